package handler_test

import (
	"bytes"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-admin-api/internal/dto"
	"github.com/noah-isme/school-admin-api/internal/handler"
	"github.com/noah-isme/school-admin-api/internal/service"
)

func newIDCardApp() *fiber.App {
	env := newFixtureEnv()
	svc := service.NewIDCardService(env.cards, env.students, env.teachers, env.classes, "Demo School", env.logger)
	app := fiber.New()
	handler.NewIDCardHandler(svc, testPaging, env.logger).Register(app.Group("/id-cards"))
	return app
}

func TestIDCardHandlerListAndGet(t *testing.T) {
	app := newIDCardApp()

	resp := perform(t, app, http.MethodGet, "/id-cards?holder_type=teacher&status=active", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var cards []dto.IDCardResponse
	decodeData(t, decodeEnvelope(t, resp), &cards)
	require.Len(t, cards, 2)

	resp = perform(t, app, http.MethodGet, "/id-cards/card1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var card dto.IDCardResponse
	decodeData(t, decodeEnvelope(t, resp), &card)
	require.Equal(t, "Ada Lovelace", card.HolderName)

	resp = perform(t, app, http.MethodGet, "/id-cards/card99", nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestIDCardHandlerRendersQRAndPDF(t *testing.T) {
	app := newIDCardApp()

	resp := perform(t, app, http.MethodGet, "/id-cards/card6/qr", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "image/png", resp.Header.Get(fiber.HeaderContentType))
	png, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))

	resp = perform(t, app, http.MethodGet, "/id-cards/card6/pdf", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	pdf, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))

	resp = perform(t, app, http.MethodGet, "/id-cards/card99/pdf", nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
