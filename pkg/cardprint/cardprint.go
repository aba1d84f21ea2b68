// Package cardprint renders identity cards as QR codes and printable PDFs.
package cardprint

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/skip2/go-qrcode"
)

// DefaultQRSize is the edge length in pixels of generated QR images.
const DefaultQRSize = 256

// Card carries everything printed on an identity card.
type Card struct {
	SchoolName string
	HolderName string
	HolderType string
	HolderID   string
	Detail     string
	CardNumber string
	Status     string
	IssuedAt   time.Time
	ExpiresAt  time.Time
}

// Payload is the text encoded into the card's QR code.
func (c Card) Payload() string {
	return fmt.Sprintf("card:%s|holder:%s|type:%s|expires:%s",
		c.CardNumber, c.HolderID, c.HolderType, c.ExpiresAt.Format("2006-01-02"))
}

// QR encodes the card payload as a PNG image.
func QR(card Card, size int) ([]byte, error) {
	if strings.TrimSpace(card.CardNumber) == "" {
		return nil, errors.New("cardprint: card number is required")
	}
	if size <= 0 {
		size = DefaultQRSize
	}
	png, err := qrcode.Encode(card.Payload(), qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("cardprint: encode qr: %w", err)
	}
	return png, nil
}

// PDF writes a printable card with its QR code to w.
func PDF(w io.Writer, card Card) error {
	png, err := QR(card, DefaultQRSize)
	if err != nil {
		return err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("ID card %s", card.CardNumber), false)
	pdf.AddPage()

	// ISO/IEC 7810 ID-1 card outline
	const (
		left   = 20.0
		top    = 20.0
		width  = 85.6
		height = 54.0
	)
	pdf.SetDrawColor(40, 145, 108)
	pdf.SetLineWidth(0.5)
	pdf.Rect(left, top, width, height, "D")

	pdf.SetXY(left+3, top+3)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(width-6, 6, card.SchoolName, "", 2, "L", false, 0, "")

	pdf.SetFont("Arial", "", 7)
	pdf.CellFormat(width-6, 4, strings.ToUpper(card.HolderType)+" IDENTITY CARD", "", 2, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetX(left + 3)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(50, 5, card.HolderName, "", 2, "L", false, 0, "")

	pdf.SetFont("Arial", "", 8)
	for _, line := range []string{
		card.Detail,
		"Card No: " + card.CardNumber,
		"Issued: " + card.IssuedAt.Format("02 Jan 2006"),
		"Expires: " + card.ExpiresAt.Format("02 Jan 2006"),
		"Status: " + card.Status,
	} {
		if strings.TrimSpace(line) == "" {
			continue
		}
		pdf.SetX(left + 3)
		pdf.CellFormat(50, 4, line, "", 2, "L", false, 0, "")
	}

	options := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", options, bytes.NewReader(png))
	pdf.ImageOptions("qr", left+width-31, top+16, 28, 28, false, options, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("cardprint: render pdf: %w", err)
	}
	return nil
}
