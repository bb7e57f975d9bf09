package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"packhouse/repository"
	"packhouse/utils"
)

type PDFHandler struct {
	Repo     *repository.ReportRepository
	SavePath string
}

// LoadingSheetPDF handles the API request to generate and save a loading
// sheet PDF. The file is written locally, pushed to R2 when configured, and
// the sheet row is stamped with the path. Upload and stamp failures are
// logged, never fatal.
func (h *PDFHandler) LoadingSheetPDF(w http.ResponseWriter, r *http.Request) {
	sheetIDStr := r.URL.Query().Get("id")
	if sheetIDStr == "" {
		http.Error(w, "missing loading sheet id", http.StatusBadRequest)
		return
	}

	sheetID, err := strconv.ParseInt(sheetIDStr, 10, 64)
	if err != nil {
		http.Error(w, "invalid loading sheet id", http.StatusBadRequest)
		return
	}

	saveDir := h.SavePath
	if saveDir == "" {
		saveDir = "./pdfs"
	}
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		http.Error(w, "failed to create save directory: "+err.Error(), http.StatusInternalServerError)
		return
	}

	pdfBytes, err := utils.GenerateLoadingSheetPDF(h.Repo, sheetID)
	if err != nil {
		http.Error(w, "failed to generate PDF: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if len(pdfBytes) == 0 {
		http.Error(w, "no loading sheet found", http.StatusNotFound)
		return
	}

	filename := fmt.Sprintf("loading_sheet_%d_%d.pdf", sheetID, time.Now().Unix())
	savePath := filepath.Join(saveDir, filename)

	if err := os.WriteFile(savePath, pdfBytes, 0644); err != nil {
		http.Error(w, "failed to save PDF: "+err.Error(), http.StatusInternalServerError)
		return
	}

	storedPath := savePath
	if publicURL, err := utils.UploadToR2(pdfBytes, filename); err != nil {
		fmt.Printf("failed to upload PDF for sheet %d to R2: %v\n", sheetID, err)
	} else {
		storedPath = publicURL
	}

	if err := h.Repo.SheetRepo.UpdatePDFInfo(sheetID, storedPath, time.Now()); err != nil {
		// Log the error but don't block the response
		fmt.Printf("failed to update pdf info for sheet %d: %v\n", sheetID, err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(fmt.Sprintf(`{"success":true,"file":"%s"}`, filename)))
}
