package shop

import (
	"fmt"
	"strings"

	"vershash/internal/botconfig"
	"vershash/internal/cart"
	"vershash/internal/category"
	"vershash/internal/checkout"
	"vershash/internal/keyboards"
	"vershash/internal/product"
	"vershash/internal/settings"
	"vershash/internal/stats"
	"vershash/internal/structs"
	"vershash/internal/texts"
	"vershash/pkg/logger"
	"vershash/pkg/tgrouter"
	"vershash/pkg/tgrouter/callback"
	"vershash/pkg/utils"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(New)

type Params struct {
	fx.In
	Logger       logger.Logger
	ProductSvc   product.Service
	CategorySvc  category.Service
	SettingsSvc  settings.Service
	BotConfigSvc botconfig.Service
	CartSvc      cart.Service
	StatsSvc     stats.Service
}

type Commands struct {
	logger       logger.Logger
	ProductSvc   product.Service
	CategorySvc  category.Service
	SettingsSvc  settings.Service
	BotConfigSvc botconfig.Service
	CartSvc      cart.Service
	StatsSvc     stats.Service
}

func New(p Params) Commands {
	return Commands{
		logger:       p.Logger,
		ProductSvc:   p.ProductSvc,
		CategorySvc:  p.CategorySvc,
		SettingsSvc:  p.SettingsSvc,
		BotConfigSvc: p.BotConfigSvc,
		CartSvc:      p.CartSvc,
		StatsSvc:     p.StatsSvc,
	}
}

// Start greets with the configured welcome template, {firstname}
// substituted, and the configured inline keyboard.
func (c *Commands) Start(ctx *tgrouter.Ctx) {
	chatID := ctx.Update().FromChat().ID
	c.logger.Info(ctx.Context, "start command", zap.Int64("chat_id", chatID))

	cfg, err := c.BotConfigSvc.Get(ctx.Context)
	if err != nil {
		c.logger.Error(ctx.Context, "failed to get bot config", zap.Error(err))
		_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, texts.Retry))
		return
	}

	firstname := ""
	if from := ctx.Update().SentFrom(); from != nil {
		firstname = from.FirstName
	}
	welcome := strings.ReplaceAll(cfg.Welcome, "{firstname}", firstname)

	if cfg.WelcomeImage != "" {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(cfg.WelcomeImage))
		photo.Caption = welcome
		photo.ReplyMarkup = keyboards.Welcome(cfg)
		_, _ = ctx.Bot().Send(photo)
		return
	}

	msg := tgbotapi.NewMessage(chatID, welcome)
	msg.ReplyMarkup = keyboards.Welcome(cfg)
	_, _ = ctx.Bot().Send(msg)
}

func (c *Commands) StartCallback(ctx *tgrouter.Ctx) {
	c.answerCallback(ctx, "")
	c.Start(ctx)
}

func (c *Commands) Categories(ctx *tgrouter.Ctx) {
	chatID := ctx.Update().FromChat().ID
	c.answerCallback(ctx, "")

	categories, err := c.CategorySvc.GetList(ctx.Context)
	if err != nil {
		c.logger.Error(ctx.Context, "failed to list categories", zap.Error(err))
		_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, texts.Retry))
		return
	}
	if len(categories) == 0 {
		_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, texts.NothingToShow))
		return
	}

	msg := tgbotapi.NewMessage(chatID, texts.PickCategory)
	msg.ReplyMarkup = keyboards.Categories(categories)
	_, _ = ctx.Bot().Send(msg)
}

func (c *Commands) Category(ctx *tgrouter.Ctx) {
	chatID := ctx.Update().FromChat().ID
	slug := callback.Value(ctx.Update().CallbackQuery.Data)
	c.answerCallback(ctx, "")

	products, err := c.ProductSvc.GetList(ctx.Context)
	if err != nil {
		c.logger.Error(ctx.Context, "failed to list products", zap.Error(err))
		_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, texts.Retry))
		return
	}

	var inCategory []structs.Product
	for _, p := range products {
		if p.Category == slug {
			inCategory = append(inCategory, p)
		}
	}
	if len(inCategory) == 0 {
		_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, texts.NothingToShow))
		return
	}

	msg := tgbotapi.NewMessage(chatID, texts.PickProduct)
	msg.ReplyMarkup = keyboards.Products(inCategory)
	_, _ = ctx.Bot().Send(msg)
}

func (c *Commands) Product(ctx *tgrouter.Ctx) {
	chatID := ctx.Update().FromChat().ID
	id := callback.Value(ctx.Update().CallbackQuery.Data)
	c.answerCallback(ctx, "")

	p, err := c.ProductSvc.GetByID(ctx.Context, id)
	if err != nil {
		c.logger.Error(ctx.Context, "failed to get product", zap.String("product_id", id), zap.Error(err))
		_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, texts.Retry))
		return
	}

	caption := productCaption(p)

	if p.Image != "" {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(p.Image))
		photo.Caption = caption
		photo.ReplyMarkup = keyboards.ProductCard(p)
		_, _ = ctx.Bot().Send(photo)
		return
	}

	msg := tgbotapi.NewMessage(chatID, caption)
	msg.ReplyMarkup = keyboards.ProductCard(p)
	_, _ = ctx.Bot().Send(msg)
}

func (c *Commands) AddToCart(ctx *tgrouter.Ctx) {
	chatID := ctx.Update().FromChat().ID
	id := callback.Value(ctx.Update().CallbackQuery.Data)

	p, err := c.ProductSvc.GetByID(ctx.Context, id)
	if err != nil {
		c.logger.Error(ctx.Context, "failed to get product", zap.String("product_id", id), zap.Error(err))
		c.answerCallback(ctx, texts.Retry)
		return
	}

	c.CartSvc.Add(chatID, cartItem(p))
	c.answerCallback(ctx, texts.AddedToCart)
}

// cartItem prices a product for the cart. Tiered products enter at the
// cheapest tier, with its label appended so the cart lines stay unambiguous.
func cartItem(p structs.Product) structs.CartItem {
	item := structs.CartItem{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.DisplayPrice(),
		Quantity: 1,
	}
	if tier, ok := p.CheapestTier(); ok {
		item.Name = fmt.Sprintf("%s (%s)", p.Name, tier.Label)
	}
	return item
}

func (c *Commands) Cart(ctx *tgrouter.Ctx) {
	c.answerCallback(ctx, "")
	c.showCart(ctx)
}

func (c *Commands) Plus(ctx *tgrouter.Ctx) {
	chatID := ctx.Update().FromChat().ID
	c.CartSvc.UpdateQuantity(chatID, callback.Value(ctx.Update().CallbackQuery.Data), 1)
	c.answerCallback(ctx, "")
	c.showCart(ctx)
}

func (c *Commands) Minus(ctx *tgrouter.Ctx) {
	chatID := ctx.Update().FromChat().ID
	c.CartSvc.UpdateQuantity(chatID, callback.Value(ctx.Update().CallbackQuery.Data), -1)
	c.answerCallback(ctx, "")
	c.showCart(ctx)
}

func (c *Commands) Remove(ctx *tgrouter.Ctx) {
	chatID := ctx.Update().FromChat().ID
	c.CartSvc.Remove(chatID, callback.Value(ctx.Update().CallbackQuery.Data))
	c.answerCallback(ctx, "")
	c.showCart(ctx)
}

func (c *Commands) Clear(ctx *tgrouter.Ctx) {
	chatID := ctx.Update().FromChat().ID
	c.CartSvc.Clear(chatID)
	c.answerCallback(ctx, "")
	_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, texts.CartEmpty))
}

func (c *Commands) Noop(ctx *tgrouter.Ctx) {
	c.answerCallback(ctx, "")
}

// Checkout formats the cart into the order message and answers the
// forwarding link with the message substituted in.
func (c *Commands) Checkout(ctx *tgrouter.Ctx) {
	chatID := ctx.Update().FromChat().ID
	c.answerCallback(ctx, "")

	items := c.CartSvc.Items(chatID)
	if len(items) == 0 {
		_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, texts.CartEmpty))
		return
	}

	settingsDoc, err := c.SettingsSvc.Get(ctx.Context)
	if err != nil {
		c.logger.Error(ctx.Context, "failed to get settings", zap.Error(err))
		_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, texts.Retry))
		return
	}
	if settingsDoc.OrderLink == "" {
		_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, texts.NoOrderLink))
		return
	}

	message := checkout.Message(items, c.CartSvc.Subtotal(chatID))
	link := checkout.Link(settingsDoc.OrderLink, message)

	_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, texts.OrderReady+"\n"+link))

	c.StatsSvc.BumpOrder(ctx.Context)
	c.CartSvc.Clear(chatID)
}

func (c *Commands) showCart(ctx *tgrouter.Ctx) {
	chatID := ctx.Update().FromChat().ID

	items := c.CartSvc.Items(chatID)
	if len(items) == 0 {
		_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, texts.CartEmpty))
		return
	}

	var b strings.Builder
	b.WriteString(texts.CartTitle + "\n")
	for _, item := range items {
		fmt.Fprintf(&b, "%s x%d — %s€\n", item.Name, item.Quantity, utils.FCurrency(item.Price*float64(item.Quantity)))
	}
	fmt.Fprintf(&b, "%s: %s€", texts.CartTotal, utils.FCurrency(c.CartSvc.Subtotal(chatID)))

	msg := tgbotapi.NewMessage(chatID, b.String())
	msg.ReplyMarkup = keyboards.Cart(items)
	_, _ = ctx.Bot().Send(msg)
}

func (c *Commands) answerCallback(ctx *tgrouter.Ctx, text string) {
	if ctx.Update().CallbackQuery == nil {
		return
	}
	_, _ = ctx.Bot().Request(tgbotapi.NewCallback(ctx.Update().CallbackQuery.ID, text))
}

func productCaption(p structs.Product) string {
	var b strings.Builder
	b.WriteString(p.Name + "\n")
	if p.Tag != "" {
		b.WriteString(p.Tag + "\n")
	}
	fmt.Fprintf(&b, "💶 %s€", utils.FCurrency(p.DisplayPrice()))
	for _, tier := range p.Pricing {
		fmt.Fprintf(&b, "\n- %s : %s€", tier.Label, utils.FCurrency(tier.Price))
	}
	if p.Description != "" {
		b.WriteString("\n" + p.Description)
	}
	if p.Origin != "" {
		b.WriteString("\n🌍 " + p.Origin)
	}
	return b.String()
}
