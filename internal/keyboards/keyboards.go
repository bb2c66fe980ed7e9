package keyboards

import (
	"fmt"

	"vershash/internal/structs"
	"vershash/internal/texts"
	"vershash/pkg/tgrouter/callback"
	"vershash/pkg/utils"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Welcome builds the /start inline keyboard: the mini-app button on its own
// row, enabled social links chunked buttons_per_row wide, then the catalogue
// and cart entries.
func Welcome(cfg structs.BotConfig) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	if cfg.MiniApp.URL != "" {
		text := cfg.MiniApp.Text
		if text == "" {
			text = texts.CatalogButton
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonWebApp(text, tgbotapi.WebAppInfo{URL: cfg.MiniApp.URL}),
		))
	}

	perRow := cfg.ButtonsPerRow
	if perRow < 1 {
		perRow = 1
	}

	var row []tgbotapi.InlineKeyboardButton
	for _, social := range cfg.Socials {
		if !social.Enabled || social.URL == "" {
			continue
		}
		label := social.Name
		if social.Emoji != "" {
			label = social.Emoji + " " + social.Name
		}
		row = append(row, tgbotapi.NewInlineKeyboardButtonURL(label, social.URL))
		if len(row) == perRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(texts.CatalogButton, callback.CallbackData{Query: "categories"}.String()),
		tgbotapi.NewInlineKeyboardButtonData(texts.CartButton, callback.CallbackData{Query: "cart"}.String()),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func Categories(categories []structs.Category) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, cat := range categories {
		if !cat.Active {
			continue
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(cat.Name, callback.CallbackData{Query: "category", Value: cat.Slug}.String()),
		))
	}
	rows = append(rows, backRow())
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func Products(products []structs.Product) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, p := range products {
		label := fmt.Sprintf("%s — %s€", p.Name, utils.FCurrency(p.DisplayPrice()))
		if !p.Available || p.Quantity == 0 {
			label += " " + texts.OutOfStockNote
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, callback.CallbackData{Query: "product", Value: p.ID}.String()),
		))
	}
	rows = append(rows, backRow())
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func ProductCard(p structs.Product) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(texts.AddToCart, callback.CallbackData{Query: "add", Value: p.ID}.String()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(texts.BackButton, callback.CallbackData{Query: "category", Value: p.Category}.String()),
			tgbotapi.NewInlineKeyboardButtonData(texts.CartButton, callback.CallbackData{Query: "cart"}.String()),
		),
	)
}

// Cart puts a minus/plus pair per line; quantities bottom out at 1, removal
// has its own button.
func Cart(items []structs.CartItem) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, item := range items {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➖", callback.CallbackData{Query: "minus", Value: item.ID}.String()),
			tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("%s x%d", item.Name, item.Quantity), callback.CallbackData{Query: "noop"}.String()),
			tgbotapi.NewInlineKeyboardButtonData("➕", callback.CallbackData{Query: "plus", Value: item.ID}.String()),
			tgbotapi.NewInlineKeyboardButtonData("🗑", callback.CallbackData{Query: "remove", Value: item.ID}.String()),
		))
	}
	rows = append(rows,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(texts.OrderButton, callback.CallbackData{Query: "checkout"}.String()),
			tgbotapi.NewInlineKeyboardButtonData(texts.ClearButton, callback.CallbackData{Query: "clear"}.String()),
		),
		backRow(),
	)
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func backRow() []tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(texts.BackButton, callback.CallbackData{Query: "start"}.String()),
	)
}
