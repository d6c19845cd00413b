package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// DefaultLocale is used when no client preference can be resolved.
const DefaultLocale = "fr"

var messages = map[string]map[string]string{
	"fr": {
		"error.bad_request":            "Requête invalide",
		"error.unauthorized":           "Authentification requise",
		"error.forbidden":              "Action non autorisée",
		"error.not_found":              "Ressource introuvable",
		"error.internal":               "Erreur interne, veuillez réessayer",
		"error.order_not_found":        "Commande introuvable",
		"error.order_fetch_failed":     "Impossible de charger la commande",
		"error.order_update_failed":    "Impossible de mettre à jour la commande",
		"error.order_cancelled":        "La commande est annulée",
		"error.order_cancel_denied":    "Cette commande ne peut plus être annulée",
		"error.order_status_invalid":   "Statut de commande invalide",
		"error.payment_status_invalid": "Statut de paiement invalide",
		"error.invalid_amount":         "Montant de paiement invalide",
		"error.cart_empty":             "Le panier est vide",
		"error.cart_line_invalid":      "Article de panier invalide",
		"error.cart_store_failed":      "Impossible d'enregistrer le panier",
		"error.product_not_found":      "Produit introuvable",
		"error.product_not_available":  "Produit indisponible",
		"error.bundle_not_found":       "Kit introuvable",
		"error.bundle_not_available":   "Kit indisponible",
		"error.bundle_price_invalid":   "Prix du kit invalide",
		"error.category_not_found":     "Catégorie introuvable",
		"error.category_not_empty":     "La catégorie contient encore des produits",
		"error.slug_taken":             "Cet identifiant est déjà utilisé",
		"error.invalid_input":          "Données invalides",
		"error.order_create_failed":    "Impossible de créer la commande",
		"error.cart_session_required":  "Session de panier requise",
		"error.jwt_secret_missing":     "Authentification indisponible",
		"error.auth_header_missing":    "En-tête d'authentification manquant",
		"error.auth_header_invalid":    "En-tête d'authentification invalide",
		"error.token_invalid":          "Jeton invalide ou expiré",
		"error.subject_invalid":        "Identité invalide",
		"error.role_invalid":           "Rôle invalide",
		"error.rate_limited":           "Trop de tentatives, réessayez dans %d secondes",
		"error.rate_limit_unavailable": "Service momentanément indisponible",
	},
	"en": {
		"error.bad_request":            "Invalid request",
		"error.unauthorized":           "Authentication required",
		"error.forbidden":              "Action not allowed",
		"error.not_found":              "Resource not found",
		"error.internal":               "Internal error, please retry",
		"error.order_not_found":        "Order not found",
		"error.order_fetch_failed":     "Could not load the order",
		"error.order_update_failed":    "Could not update the order",
		"error.order_cancelled":        "The order is cancelled",
		"error.order_cancel_denied":    "This order can no longer be cancelled",
		"error.order_status_invalid":   "Invalid order status",
		"error.payment_status_invalid": "Invalid payment status",
		"error.invalid_amount":         "Invalid payment amount",
		"error.cart_empty":             "The cart is empty",
		"error.cart_line_invalid":      "Invalid cart line",
		"error.cart_store_failed":      "Could not persist the cart",
		"error.product_not_found":      "Product not found",
		"error.product_not_available":  "Product not available",
		"error.bundle_not_found":       "Bundle not found",
		"error.bundle_not_available":   "Bundle not available",
		"error.bundle_price_invalid":   "Invalid bundle price",
		"error.category_not_found":     "Category not found",
		"error.category_not_empty":     "The category still has products",
		"error.slug_taken":             "This identifier is already in use",
		"error.invalid_input":          "Invalid data",
		"error.order_create_failed":    "Could not create the order",
		"error.cart_session_required":  "A cart session is required",
		"error.jwt_secret_missing":     "Authentication unavailable",
		"error.auth_header_missing":    "Missing authentication header",
		"error.auth_header_invalid":    "Invalid authentication header",
		"error.token_invalid":          "Invalid or expired token",
		"error.subject_invalid":        "Invalid identity",
		"error.role_invalid":           "Invalid role",
		"error.rate_limited":           "Too many attempts, retry in %d seconds",
		"error.rate_limit_unavailable": "Service temporarily unavailable",
	},
}

// ResolveLocale picks the response locale from the locale query parameter,
// then the Accept-Language header, falling back to the default.
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return DefaultLocale
	}
	if locale := normalizeLocale(c.Query("locale")); locale != "" {
		return locale
	}
	header := c.GetHeader("Accept-Language")
	for _, part := range strings.Split(header, ",") {
		if locale := normalizeLocale(part); locale != "" {
			return locale
		}
	}
	return DefaultLocale
}

// T translates a message key for the given locale.
func T(locale, key string) string {
	if table, ok := messages[locale]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if msg, ok := messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Sprintf translates a message key and formats its arguments.
func Sprintf(locale, key string, args ...interface{}) string {
	return fmt.Sprintf(T(locale, key), args...)
}

func normalizeLocale(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return ""
	}
	if idx := strings.IndexAny(raw, ";-_"); idx > 0 {
		raw = raw[:idx]
	}
	if _, ok := messages[raw]; ok {
		return raw
	}
	return ""
}
