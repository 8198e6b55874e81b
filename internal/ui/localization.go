package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Default and fallback languages
const (
	DefaultLanguage  = "es"
	FallbackLanguage = "en"
)

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyNavHome          = "nav_home"
	KeyNavCatalog       = "nav_catalog"
	KeyNavCart          = "nav_cart"
	KeyNavCheckout      = "nav_checkout"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeyAPIBaseURL       = "api_base_url"
	KeyRequestTimeout   = "request_timeout"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeySettingsSaved    = "settings_saved"
	KeyRestartRequired  = "restart_required"
	KeyFeatured         = "featured"
	KeyViewCatalog      = "view_catalog"
	KeySearchHint       = "search_hint"
	KeyAllCategories    = "all_categories"
	KeySortNone         = "sort_none"
	KeySortPriceAsc     = "sort_price_asc"
	KeySortPriceDesc    = "sort_price_desc"
	KeySortNameAsc      = "sort_name_asc"
	KeyLoading          = "loading"
	KeyLoadFailed       = "load_failed"
	KeyNoResults        = "no_results"
	KeyPrevious         = "previous"
	KeyNext             = "next"
	KeyPageOf           = "page_of"
	KeyAddToCart        = "add_to_cart"
	KeyInStock          = "in_stock"
	KeyOutOfStock       = "out_of_stock"
	KeyWatering         = "watering"
	KeyLight            = "light"
	KeyAddedToCart      = "added_to_cart"
	KeySuccess          = "success"
	KeyCartTitle        = "cart_title"
	KeyCartEmpty        = "cart_empty"
	KeyCartEmptyTitle   = "cart_empty_title"
	KeyGoToCatalog      = "go_to_catalog"
	KeyContinueShopping = "continue_shopping"
	KeyClearCart        = "clear_cart"
	KeyProceedCheckout  = "proceed_checkout"
	KeyOrderSummary     = "order_summary"
	KeySubtotal         = "subtotal"
	KeyTotal            = "total"
	KeyYouMayLike       = "you_may_like"
	KeyCheckoutTitle    = "checkout_title"
	KeyName             = "name"
	KeyEmail            = "email"
	KeyAddress          = "address"
	KeyDelivery         = "delivery"
	KeyShipping         = "shipping"
	KeyPickup           = "pickup"
	KeyPlaceOrder       = "place_order"
	KeyProcessing       = "processing"
	KeyOrderFailed      = "order_failed"
	KeyOrderPending     = "order_pending"
	KeyInvalidForm      = "invalid_form"
	KeyError            = "error"
	KeyThankYouTitle    = "thank_you_title"
	KeyThankYouMessage  = "thank_you_message"
	KeyOrderNumber      = "order_number"
	KeyBackToHome       = "back_to_home"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: DefaultLanguage,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. Unknown codes are ignored.
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = DefaultLanguage
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	if texts, exists := l.texts[FallbackLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"es": "Español",
		"en": "English",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// Spanish texts
	l.texts["es"] = map[string]string{
		KeyAppTitle:         "Flora Verde",
		KeyNavHome:          "Inicio",
		KeyNavCatalog:       "Catálogo",
		KeyNavCart:          "Carrito",
		KeyNavCheckout:      "Checkout",
		KeySettings:         "Configuración",
		KeyFile:             "Archivo",
		KeyLanguage:         "Idioma",
		KeyAPIBaseURL:       "URL de la API",
		KeyRequestTimeout:   "Tiempo de espera (segundos)",
		KeySave:             "Guardar",
		KeyCancel:           "Cancelar",
		KeySettingsSaved:    "Configuración guardada",
		KeyRestartRequired:  "Los cambios de conexión se aplican al reiniciar la aplicación.",
		KeyFeatured:         "Productos destacados",
		KeyViewCatalog:      "Ver catálogo",
		KeySearchHint:       "Buscar plantas...",
		KeyAllCategories:    "Todas las categorías",
		KeySortNone:         "Ordenar por",
		KeySortPriceAsc:     "Precio: menor a mayor",
		KeySortPriceDesc:    "Precio: mayor a menor",
		KeySortNameAsc:      "Nombre: A-Z",
		KeyLoading:          "Cargando...",
		KeyLoadFailed:       "Error al cargar los productos. Por favor intente más tarde.",
		KeyNoResults:        "No se encontraron productos.",
		KeyPrevious:         "◄ Anterior",
		KeyNext:             "Siguiente ►",
		KeyPageOf:           "Página %d de %d",
		KeyAddToCart:        "Agregar al carrito",
		KeyInStock:          "✓ En stock",
		KeyOutOfStock:       "✗ Agotado",
		KeyWatering:         "Riego",
		KeyLight:            "Luz",
		KeyAddedToCart:      "Producto agregado al carrito",
		KeySuccess:          "¡Éxito!",
		KeyCartTitle:        "Mi Carrito",
		KeyCartEmpty:        "Tu carrito está vacío.",
		KeyCartEmptyTitle:   "Carrito Vacío",
		KeyGoToCatalog:      "Ir al catálogo",
		KeyContinueShopping: "← Seguir Comprando",
		KeyClearCart:        "Vaciar Carrito",
		KeyProceedCheckout:  "Proceder al pago",
		KeyOrderSummary:     "Resumen del pedido",
		KeySubtotal:         "Subtotal",
		KeyTotal:            "Total",
		KeyYouMayLike:       "También te puede gustar",
		KeyCheckoutTitle:    "Finalizar compra",
		KeyName:             "Nombre completo",
		KeyEmail:            "Correo electrónico",
		KeyAddress:          "Dirección de envío",
		KeyDelivery:         "Método de entrega",
		KeyShipping:         "Despacho a domicilio",
		KeyPickup:           "Retiro en tienda",
		KeyPlaceOrder:       "Confirmar pedido",
		KeyProcessing:       "Procesando...",
		KeyOrderFailed:      "Hubo un error al procesar su pedido. Por favor intente nuevamente.",
		KeyOrderPending:     "Su pedido ya se está procesando.",
		KeyInvalidForm:      "Revise los campos del formulario",
		KeyError:            "Error",
		KeyThankYouTitle:    "¡Gracias por tu compra!",
		KeyThankYouMessage:  "Hemos recibido tu pedido y lo estamos preparando.",
		KeyOrderNumber:      "Número de pedido: %s",
		KeyBackToHome:       "Volver al inicio",
	}

	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Flora Verde",
		KeyNavHome:          "Home",
		KeyNavCatalog:       "Catalog",
		KeyNavCart:          "Cart",
		KeyNavCheckout:      "Checkout",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeyAPIBaseURL:       "API URL",
		KeyRequestTimeout:   "Request timeout (seconds)",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeySettingsSaved:    "Settings saved",
		KeyRestartRequired:  "Connection changes take effect after restarting the app.",
		KeyFeatured:         "Featured products",
		KeyViewCatalog:      "View catalog",
		KeySearchHint:       "Search plants...",
		KeyAllCategories:    "All categories",
		KeySortNone:         "Sort by",
		KeySortPriceAsc:     "Price: low to high",
		KeySortPriceDesc:    "Price: high to low",
		KeySortNameAsc:      "Name: A-Z",
		KeyLoading:          "Loading...",
		KeyLoadFailed:       "Failed to load products. Please try again later.",
		KeyNoResults:        "No products found.",
		KeyPrevious:         "◄ Previous",
		KeyNext:             "Next ►",
		KeyPageOf:           "Page %d of %d",
		KeyAddToCart:        "Add to cart",
		KeyInStock:          "✓ In stock",
		KeyOutOfStock:       "✗ Out of stock",
		KeyWatering:         "Watering",
		KeyLight:            "Light",
		KeyAddedToCart:      "Product added to cart",
		KeySuccess:          "Success!",
		KeyCartTitle:        "My Cart",
		KeyCartEmpty:        "Your cart is empty.",
		KeyCartEmptyTitle:   "Empty Cart",
		KeyGoToCatalog:      "Go to catalog",
		KeyContinueShopping: "← Continue Shopping",
		KeyClearCart:        "Clear Cart",
		KeyProceedCheckout:  "Proceed to checkout",
		KeyOrderSummary:     "Order summary",
		KeySubtotal:         "Subtotal",
		KeyTotal:            "Total",
		KeyYouMayLike:       "You may also like",
		KeyCheckoutTitle:    "Checkout",
		KeyName:             "Full name",
		KeyEmail:            "E-mail",
		KeyAddress:          "Shipping address",
		KeyDelivery:         "Delivery method",
		KeyShipping:         "Home delivery",
		KeyPickup:           "Store pickup",
		KeyPlaceOrder:       "Place order",
		KeyProcessing:       "Processing...",
		KeyOrderFailed:      "There was an error processing your order. Please try again.",
		KeyOrderPending:     "Your order is already being processed.",
		KeyInvalidForm:      "Please check the form fields",
		KeyError:            "Error",
		KeyThankYouTitle:    "Thank you for your purchase!",
		KeyThankYouMessage:  "We received your order and are preparing it.",
		KeyOrderNumber:      "Order number: %s",
		KeyBackToHome:       "Back to home",
	}
}
