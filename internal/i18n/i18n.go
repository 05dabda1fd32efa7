// Package i18n translates user-facing API messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a translator for the built-in en, pt and nl messages.
func NewTranslator() *Translator {
	return &Translator{messages: messages}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the message for key in locale, then in DefaultLocale, and
// finally the key itself.
func (t *Translator) Translate(key, locale string) string {
	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// GetLocale returns the first supported language of the Accept-Language header,
// in the order the client listed them, or DefaultLocale.
func GetLocale(c *gin.Context) string {
	return ParseLocale(c.GetHeader(AcceptLanguageHeader))
}

// ParseLocale picks a supported locale from an Accept-Language value such as
// "en-US,en;q=0.9,pt;q=0.8". Quality values are ignored.
func ParseLocale(acceptLang string) string {
	for _, part := range strings.Split(acceptLang, ",") {
		lang := strings.TrimSpace(strings.Split(part, ";")[0])
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		if _, ok := messages[lang]; ok {
			return lang
		}
	}
	return DefaultLocale
}

// T translates key for the request's locale using the default translator.
func T(c *gin.Context, key string) string {
	return GetTranslator().Translate(key, GetLocale(c))
}

var messages = map[string]map[string]string{
	"en": {
		ErrKeyInvalidRequest:     "Invalid request",
		ErrKeyInvalidRequestBody: "Invalid request body",
		ErrKeyInternalError:      "An unexpected error occurred",
		ErrKeyUnauthorized:       "Unauthorized",
		ErrKeyAPIKeyRequired:     "API key is required",
		ErrKeyInvalidAPIKey:      "Invalid API key",
		ErrKeyNotFound:           "Not found",
		ErrKeyRateLimitExceeded:  "Too many requests, please try again later",
		ErrKeyTimeout:            "The request took too long",
		ErrKeyStoreUnavailable:   "Vehicle catalog store is temporarily unavailable",
		ErrKeyExportFailed:       "Could not build the load sheet",

		ErrKeyItemsRequired:   "At least one item is required",
		ErrKeyTooManyItems:    "Too many inventory lines",
		ErrKeyTooManyUnits:    "Too many units in total",
		ErrKeyItemName:        "Item name must not be blank",
		ErrKeyItemQuantity:    "Item quantity must not be negative",
		ErrKeyItemVolume:      "Item volume must be a non-negative number",
		ErrKeyRoomsRequired:   "At least one room is required",
		ErrKeySourcesRequired: "At least one item list is required",
		ErrKeyCatalogRequired: "At least one vehicle class is required",
		ErrKeyVehicleClass:    "Vehicle class needs a unique id and positive limits and dimensions",
	},
	"pt": {
		ErrKeyInvalidRequest:     "Requisição inválida",
		ErrKeyInvalidRequestBody: "Corpo da requisição inválido",
		ErrKeyInternalError:      "Ocorreu um erro inesperado",
		ErrKeyUnauthorized:       "Não autorizado",
		ErrKeyAPIKeyRequired:     "Chave de API é obrigatória",
		ErrKeyInvalidAPIKey:      "Chave de API inválida",
		ErrKeyNotFound:           "Não encontrado",
		ErrKeyRateLimitExceeded:  "Muitas requisições, tente novamente mais tarde",
		ErrKeyTimeout:            "A requisição demorou demais",
		ErrKeyStoreUnavailable:   "O catálogo de veículos está temporariamente indisponível",
		ErrKeyExportFailed:       "Não foi possível gerar a planilha de carga",

		ErrKeyItemsRequired:   "Pelo menos um item é obrigatório",
		ErrKeyTooManyItems:    "Linhas de inventário demais",
		ErrKeyTooManyUnits:    "Unidades demais no total",
		ErrKeyItemName:        "O nome do item não pode estar vazio",
		ErrKeyItemQuantity:    "A quantidade do item não pode ser negativa",
		ErrKeyItemVolume:      "O volume do item deve ser um número não negativo",
		ErrKeyRoomsRequired:   "Pelo menos um cômodo é obrigatório",
		ErrKeySourcesRequired: "Pelo menos uma lista de itens é obrigatória",
		ErrKeyCatalogRequired: "Pelo menos uma classe de veículo é obrigatória",
		ErrKeyVehicleClass:    "A classe de veículo precisa de um id único e limites e dimensões positivos",
	},
	"nl": {
		ErrKeyInvalidRequest:     "Ongeldig verzoek",
		ErrKeyInvalidRequestBody: "Ongeldige aanvraag body",
		ErrKeyInternalError:      "Er is een onverwachte fout opgetreden",
		ErrKeyUnauthorized:       "Niet geautoriseerd",
		ErrKeyAPIKeyRequired:     "API-sleutel is vereist",
		ErrKeyInvalidAPIKey:      "Ongeldige API-sleutel",
		ErrKeyNotFound:           "Niet gevonden",
		ErrKeyRateLimitExceeded:  "Te veel verzoeken, probeer het later opnieuw",
		ErrKeyTimeout:            "Het verzoek duurde te lang",
		ErrKeyStoreUnavailable:   "De voertuigcatalogus is tijdelijk niet beschikbaar",
		ErrKeyExportFailed:       "Het laadoverzicht kon niet worden gemaakt",

		ErrKeyItemsRequired:   "Er is minstens één item vereist",
		ErrKeyTooManyItems:    "Te veel inventarisregels",
		ErrKeyTooManyUnits:    "Te veel eenheden in totaal",
		ErrKeyItemName:        "De itemnaam mag niet leeg zijn",
		ErrKeyItemQuantity:    "Het aantal mag niet negatief zijn",
		ErrKeyItemVolume:      "Het volume moet een niet-negatief getal zijn",
		ErrKeyRoomsRequired:   "Er is minstens één kamer vereist",
		ErrKeySourcesRequired: "Er is minstens één itemlijst vereist",
		ErrKeyCatalogRequired: "Er is minstens één voertuigklasse vereist",
		ErrKeyVehicleClass:    "Een voertuigklasse heeft een unieke id en positieve limieten en afmetingen nodig",
	},
}
