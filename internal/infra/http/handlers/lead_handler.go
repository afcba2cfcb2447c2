package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/xavierca1/lead-intake/internal/infra/http/middleware"
	"github.com/xavierca1/lead-intake/internal/usecase"
)

// MaxUploadSize bounds a bulk CSV upload to 2 MiB.
const MaxUploadSize = 2 << 20

type LeadHandler struct {
	CreateLeadUC *usecase.CreateLeadUseCase
	BulkImportUC *usecase.BulkImportUseCase
	UploadDir    string
}

func NewLeadHandler(createUC *usecase.CreateLeadUseCase, bulkUC *usecase.BulkImportUseCase, uploadDir string) *LeadHandler {
	return &LeadHandler{
		CreateLeadUC: createUC,
		BulkImportUC: bulkUC,
		UploadDir:    uploadDir,
	}
}

type validationFailedResponse struct {
	Msg    string            `json:"msg"`
	Errors map[string]string `json:"errors"`
}

type bulkUploadResponse struct {
	Msg          string                `json:"msg"`
	InvalidCount int                   `json:"invalidCount"`
	Details      []usecase.RejectedRow `json:"details"`
}

// HandlePostEntry receives one lead from the manual entry form.
func (h *LeadHandler) HandlePostEntry(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeMessage(w, http.StatusBadRequest, "Could not parse the submitted form.")
		return
	}

	input := usecase.LeadInput{
		FName:   r.PostFormValue("fname"),
		LName:   r.PostFormValue("lname"),
		Email:   r.PostFormValue("email"),
		Phone:   r.PostFormValue("phone"),
		Zipcode: r.PostFormValue("zipcode"),
	}

	output, err := h.CreateLeadUC.Execute(r.Context(), input)
	if err != nil {
		var domainErr *usecase.DomainError
		if errors.As(err, &domainErr) {
			log.Println("Validation failed for a manual entry.")
			middleware.RecordLeadsRejected("form", 1)
			writeJSON(w, http.StatusBadRequest, validationFailedResponse{
				Msg:    domainErr.Message,
				Errors: domainErr.Fields,
			})
			return
		}

		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.RecordLeadsAccepted("form", 1)
	writeJSON(w, http.StatusCreated, output)
}

// HandleBulkUpload receives a multipart CSV, spools it to the temp dir and
// runs the import. The spooled file is removed on every exit path.
func (h *LeadHandler) HandleBulkUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)

	if err := r.ParseMultipartForm(MaxUploadSize); err != nil {
		writeMessage(w, http.StatusBadRequest, "No file uploaded. Please attach a CSV file.")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "No file uploaded. Please attach a CSV file.")
		return
	}
	defer file.Close()

	tempPath, err := h.spoolUpload(file)
	if err != nil {
		log.Printf("spooling upload failed: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Internal Server Error: Could not read the uploaded file.")
		return
	}
	defer func() {
		if err := os.Remove(tempPath); err != nil {
			log.Printf("removing temp upload %s failed: %v", tempPath, err)
		}
	}()

	spooled, err := os.Open(tempPath)
	if err != nil {
		log.Printf("opening temp upload failed: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Internal Server Error: Could not read the uploaded file.")
		return
	}
	defer spooled.Close()

	outcome, err := h.BulkImportUC.Execute(r.Context(), spooled)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.RecordBulkImport()
	middleware.RecordLeadsAccepted("bulk", outcome.Accepted)
	middleware.RecordLeadsRejected("bulk", outcome.Rejected)

	writeJSON(w, http.StatusOK, bulkUploadResponse{
		Msg:          bulkResultMessage(outcome),
		InvalidCount: outcome.Rejected,
		Details:      outcome.Details,
	})
}

func bulkResultMessage(outcome *usecase.BulkOutcome) string {
	return fmt.Sprintf("File processed. %d leads saved, %d rejected.", outcome.Accepted, outcome.Rejected)
}

func (h *LeadHandler) spoolUpload(file io.Reader) (string, error) {
	tempPath := filepath.Join(h.UploadDir, uuid.NewString()+".csv")

	dst, err := os.Create(tempPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(tempPath)
		return "", err
	}
	return tempPath, nil
}
