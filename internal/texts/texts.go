package texts

// Storefront bot copy. The shop talks French.
const (
	Retry          = "Une erreur est survenue, réessayez plus tard."
	CatalogButton  = "🛍 Catalogue"
	CartButton     = "🛒 Panier"
	InfoButton     = "ℹ️ Infos"
	BackButton     = "⬅️ Retour"
	AddToCart      = "➕ Ajouter au panier"
	AddedToCart    = "Ajouté au panier ✅"
	OrderButton    = "✅ Commander"
	ClearButton    = "🗑 Vider le panier"
	PickCategory   = "Choisissez une catégorie :"
	PickProduct    = "Choisissez un produit :"
	CartEmpty      = "Votre panier est vide."
	CartTitle      = "🛒 Votre panier :"
	CartTotal      = "Total"
	OrderReady     = "Votre commande est prête, envoyez-la ici :"
	NoOrderLink    = "Aucun lien de commande n'est configuré pour le moment."
	NothingToShow  = "Rien à afficher pour le moment."
	OutOfStockNote = "(rupture)"
)
