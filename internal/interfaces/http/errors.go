package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/pkg/i18n"
)

// LocalLang key del idioma resuelto para la petición.
const LocalLang = "lang"

// LanguageMiddleware resuelve el idioma de la petición: ?lang= tiene prioridad sobre Accept-Language;
// sin coincidencia se usa fallback (APP_LANG).
func LanguageMiddleware(fallback string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accept := c.Query("lang")
		if accept == "" {
			accept = c.Get(fiber.HeaderAcceptLanguage)
		}
		c.Locals(LocalLang, i18n.Match(accept, fallback))
		return c.Next()
	}
}

// Lang devuelve el idioma resuelto por LanguageMiddleware (inglés si no pasó por él).
func Lang(c *fiber.Ctx) language.Tag {
	if tag, ok := c.Locals(LocalLang).(language.Tag); ok {
		return tag
	}
	return language.English
}

// operation textos de error de una escritura. Los vacíos caen al mapeo genérico.
type operation struct {
	validation i18n.Key // campos de cabecera inválidos
	permission i18n.Key // RLS / privilegios
	failed     i18n.Key // resto de fallos remotos
	detail     bool     // failed lleva %s con el mensaje remoto
}

var (
	opStockIn  = operation{validation: i18n.StockInMissingHeader, permission: i18n.StockInPermission, failed: i18n.StockInFailed, detail: true}
	opTransfer = operation{validation: i18n.TransferBranches, permission: i18n.TransferPermission, failed: i18n.TransferFailed, detail: true}
	opSupplier = operation{validation: i18n.SupplierNameRequired, permission: i18n.SupplierPermission, failed: i18n.SupplierFailed, detail: true}
	opReport   = operation{validation: i18n.ReportInvalidRange, failed: i18n.ReportLoadFailed}
	opGeneric  = operation{}
)

// writeError traduce un error de dominio o remoto a status + ErrorResponse en el idioma de la petición.
func writeError(c *fiber.Ctx, err error, op operation) error {
	tag := Lang(c)

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		msg := ve.Error()
		switch {
		case strings.HasPrefix(ve.Field, "items"):
			msg = i18n.T(tag, i18n.ItemsInvalid)
		case op.validation != "":
			msg = i18n.T(tag, op.validation)
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}

	var re *domain.RemoteError
	if errors.As(err, &re) {
		switch re.Kind {
		case domain.KindPermission:
			msg := i18n.T(tag, i18n.AuthForbidden)
			if op.permission != "" {
				msg = i18n.T(tag, op.permission)
			}
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "PERMISSION_DENIED", Message: msg})
		case domain.KindSchemaMismatch:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Code: "SCHEMA_MISMATCH", Message: i18n.T(tag, i18n.SchemaMismatch, re.Error()),
			})
		}
		return internalError(c, tag, op, re.Error())
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: i18n.T(tag, i18n.ViewNotFound)})
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: i18n.T(tag, i18n.AuthInvalidCredential)})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: i18n.T(tag, i18n.AuthInactive)})
	case errors.Is(err, domain.ErrEmailExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: err.Error()})
	}
	return internalError(c, tag, op, err.Error())
}

func internalError(c *fiber.Ctx, tag language.Tag, op operation, detail string) error {
	msg := detail
	switch {
	case op.failed != "" && op.detail:
		msg = i18n.T(tag, op.failed, detail)
	case op.failed != "":
		msg = i18n.T(tag, op.failed)
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: msg})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: i18n.T(Lang(c), i18n.InvalidBody)})
}
