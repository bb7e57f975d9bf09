package utils

import (
	"bytes"
	"context"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"packhouse/models"
	"packhouse/repository"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// GenerateLoadingSheetPDF renders every copy of the loading sheet into one
// PDF, keeping each copy whole on the page.
func GenerateLoadingSheetPDF(repo *repository.ReportRepository, sheetID int64) ([]byte, error) {
	// Fetch facility identity
	facility, err := repo.GetSettingsForPDF()
	if err != nil {
		return nil, err
	}

	// Fetch loading sheet
	sheet, err := repo.GetSheetForPDF(sheetID)
	if err != nil {
		return nil, err
	}
	if sheet == nil {
		return nil, nil
	}

	// Format sheet date safely
	formattedDate := "-"
	if !sheet.CreatedAt.IsZero() {
		formattedDate = sheet.CreatedAt.Format("02-Jan-2006")
	}

	// Prepare contact numbers
	contacts := ""
	if facility != nil {
		for _, c := range facility.Contacts {
			contacts += c.Number + "(" + c.Label + "), "
		}
		if len(contacts) > 2 {
			contacts = contacts[:len(contacts)-2]
		}
	}

	// Copy titles
	copyTitles := []string{"Office Copy", "Driver Copy", "Consignee Copy"}

	// Load HTML template once
	tmpl, err := template.ParseFiles("templates/loading_sheet_template.html")
	if err != nil {
		return nil, err
	}

	var fullHTML bytes.Buffer
	for _, title := range copyTitles {
		data := models.LoadingSheetPDFData{
			Facility:    facility,
			Sheet:       sheet,
			Contacts:    contacts,
			Date:        formattedDate,
			TotalBoxes:  sheet.TotalBoxes,
			TotalWeight: sheet.TotalWeight,
			WeightWords: WeightToWords(sheet.TotalWeight),
			CopyTitle:   title,
			LineCount:   len(sheet.Lines),
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, err
		}

		// Wrap each copy in a div that avoids breaking across pages
		fullHTML.WriteString("<div class='sheet-copy'>")
		fullHTML.Write(buf.Bytes())
		fullHTML.WriteString("</div>")
	}

	finalHTML := `
		<!DOCTYPE html>
		<html>
		<head>
		<meta charset="UTF-8">
		<style>
		@page {
			size: A4;
			margin: 20px;
		}
		body {
			font-family: Arial, Helvetica, sans-serif;
			font-size: 12px;
			margin: 0;
			padding: 0;
		}
		.sheet-copy {
			page-break-inside: avoid;
			border: none;
		}
		</style>
		</head>
		<body>` + fullHTML.String() + `</body></html>`

	// Create temp HTML file
	tmpDir := os.TempDir()
	tmpHTML := filepath.Join(tmpDir, "loading_sheet_"+time.Now().Format("20060102150405")+".html")
	if err := os.WriteFile(tmpHTML, []byte(finalHTML), 0644); err != nil {
		return nil, err
	}
	defer os.Remove(tmpHTML)

	// Generate PDF with headless Chrome
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuf []byte
	fileURL := "file://" + tmpHTML

	err = chromedp.Run(ctx,
		chromedp.Navigate(fileURL),
		chromedp.Sleep(1*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).  // A4 width
				WithPaperHeight(11.7). // A4 height
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}

	return pdfBuf, nil
}
