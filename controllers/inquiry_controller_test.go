package controllers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ACXLVII/FYP-HijauanFaunaResources-Ecom-Admin-sub000/models"
)

type fakeInquiryRepo struct {
	inquiry    *models.Inquiry
	findErr    error
	matched    int64
	deleted    int64
	lastStatus string
}

func (f *fakeInquiryRepo) FindAll(_ context.Context, page, limit int) ([]models.Inquiry, int64, error) {
	if f.inquiry == nil {
		return nil, 0, nil
	}
	return []models.Inquiry{*f.inquiry}, 1, nil
}
func (f *fakeInquiryRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Inquiry, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.inquiry, nil
}
func (f *fakeInquiryRepo) UpdateStatus(_ context.Context, id primitive.ObjectID, status string) (int64, error) {
	f.lastStatus = status
	return f.matched, nil
}
func (f *fakeInquiryRepo) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	return f.deleted, nil
}
func (f *fakeInquiryRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	return 0, nil
}

func newInquiryRouter(repo *fakeInquiryRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ic := NewInquiryController(repo)
	r := gin.New()
	r.GET("/inquiries", ic.GetInquiries)
	r.PATCH("/inquiries/:id/status", ic.UpdateInquiryStatus)
	r.DELETE("/inquiries/:id", ic.DeleteInquiry)
	return r
}

func TestUpdateInquiryStatus_EmptyBodyToggles(t *testing.T) {
	repo := &fakeInquiryRepo{
		inquiry: &models.Inquiry{ID: primitive.NewObjectID(), Status: models.InquiryStatusPending},
		matched: 1,
	}
	r := newInquiryRouter(repo)

	id := repo.inquiry.ID.Hex()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/inquiries/"+id+"/status", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.InquiryStatusReplied, repo.lastStatus)

	// Toggling a replied inquiry flips it back.
	repo.inquiry.Status = models.InquiryStatusReplied
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/inquiries/"+id+"/status", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.InquiryStatusPending, repo.lastStatus)
}

func TestUpdateInquiryStatus_ExplicitStatus(t *testing.T) {
	repo := &fakeInquiryRepo{matched: 1}
	r := newInquiryRouter(repo)

	body := bytes.NewReader([]byte(`{"status":"Replied"}`))
	req := httptest.NewRequest(http.MethodPatch, "/inquiries/"+primitive.NewObjectID().Hex()+"/status", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.InquiryStatusReplied, repo.lastStatus)
}

func TestUpdateInquiryStatus_RejectsUnknownStatus(t *testing.T) {
	r := newInquiryRouter(&fakeInquiryRepo{matched: 1})

	body := bytes.NewReader([]byte(`{"status":"Archived"}`))
	req := httptest.NewRequest(http.MethodPatch, "/inquiries/"+primitive.NewObjectID().Hex()+"/status", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateInquiryStatus_InvalidID(t *testing.T) {
	r := newInquiryRouter(&fakeInquiryRepo{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/inquiries/not-an-id/status", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteInquiry_NotFound(t *testing.T) {
	r := newInquiryRouter(&fakeInquiryRepo{deleted: 0})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/inquiries/"+primitive.NewObjectID().Hex(), nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
