package handlers_test

import (
	"net/http"
	"testing"
)

func TestAdminSearchDonations(t *testing.T) {
	r := setupRouter(t)
	hotelToken := registerAccount(t, r, "Grand Hotel", "hotel@example.com", "1112223330", "Hotel")
	registerAccount(t, r, "Sunrise Home", "home@example.com", "9998887770", "Orphanage")
	adminToken := registerAccount(t, r, "Root Admin", "admin@example.com", "7778889990", "Admin")

	submitDonation(t, r, hotelToken, "DOC-1", "9998887770", "Pizza")
	submitDonation(t, r, hotelToken, "DOC-2", "9998887770", "Rice")

	// Substring match on food name
	w := doJSON(t, r, http.MethodGet, "/api/admin/donations?search=piz", adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("search failed: %d %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if got := donationIDs(t, body); len(got) != 1 {
		t.Errorf("search 'piz' should match only the Pizza donation, got %v", got)
	}

	// Empty keyword returns all
	w = doJSON(t, r, http.MethodGet, "/api/admin/donations", adminToken, nil)
	if got := donationIDs(t, decodeBody(t, w)); len(got) != 2 {
		t.Errorf("empty search should return all donations, got %v", got)
	}

	// Keyword also matches document ids
	w = doJSON(t, r, http.MethodGet, "/api/admin/donations?search=DOC-2", adminToken, nil)
	if got := donationIDs(t, decodeBody(t, w)); len(got) != 1 {
		t.Errorf("search by document id should match one donation, got %v", got)
	}
}

func TestAdminSearchUsers(t *testing.T) {
	r := setupRouter(t)
	registerAccount(t, r, "Grand Hotel", "hotel@example.com", "1112223330", "Hotel")
	registerAccount(t, r, "Sunrise Home", "home@example.com", "9998887770", "Orphanage")
	adminToken := registerAccount(t, r, "Root Admin", "admin@example.com", "7778889990", "Admin")

	w := doJSON(t, r, http.MethodGet, "/api/admin/users?search=sunrise", adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("user search failed: %d %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if count, _ := body["count"].(float64); count != 1 {
		t.Errorf("case-insensitive search 'sunrise' should match one user, got %v", body["count"])
	}

	w = doJSON(t, r, http.MethodGet, "/api/admin/users", adminToken, nil)
	if count, _ := decodeBody(t, w)["count"].(float64); count != 3 {
		t.Errorf("empty search should list all three users, got %v", count)
	}
}

func TestAdminUpdateAndDeleteUser(t *testing.T) {
	r := setupRouter(t)
	registerAccount(t, r, "Grand Hotel", "hotel@example.com", "1112223330", "Hotel")
	adminToken := registerAccount(t, r, "Root Admin", "admin@example.com", "7778889990", "Admin")

	w := doJSON(t, r, http.MethodPut, "/api/admin/users/1", adminToken,
		map[string]string{"address": "42 New Street"})
	if w.Code != http.StatusOK {
		t.Fatalf("update failed: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodDelete, "/api/admin/users/1", adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete failed: %d %s", w.Code, w.Body.String())
	}
	w = doJSON(t, r, http.MethodDelete, "/api/admin/users/1", adminToken, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("second delete should 404, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPut, "/api/admin/users/999", adminToken,
		map[string]string{"address": "nowhere"})
	if w.Code != http.StatusNotFound {
		t.Errorf("update of missing user should 404, got %d", w.Code)
	}
}

func TestAdminDeleteDonation(t *testing.T) {
	r := setupRouter(t)
	hotelToken := registerAccount(t, r, "Grand Hotel", "hotel@example.com", "1112223330", "Hotel")
	registerAccount(t, r, "Sunrise Home", "home@example.com", "9998887770", "Orphanage")
	adminToken := registerAccount(t, r, "Root Admin", "admin@example.com", "7778889990", "Admin")

	submitDonation(t, r, hotelToken, "DOC-1", "9998887770", "Rice")

	w := doJSON(t, r, http.MethodDelete, "/api/admin/donations/1", adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete failed: %d %s", w.Code, w.Body.String())
	}
	w = doJSON(t, r, http.MethodGet, "/api/donations/status/DOC-1", "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("deleted donation should no longer resolve, got %d", w.Code)
	}
	w = doJSON(t, r, http.MethodDelete, "/api/admin/donations/1", adminToken, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("second delete should 404, got %d", w.Code)
	}
}

func TestAdminForceStatusAndHistory(t *testing.T) {
	r := setupRouter(t)
	hotelToken := registerAccount(t, r, "Grand Hotel", "hotel@example.com", "1112223330", "Hotel")
	orphanageToken := registerAccount(t, r, "Sunrise Home", "home@example.com", "9998887770", "Orphanage")
	adminToken := registerAccount(t, r, "Root Admin", "admin@example.com", "7778889990", "Admin")

	submitDonation(t, r, hotelToken, "DOC-1", "9998887770", "Rice")
	doJSON(t, r, http.MethodPut, "/api/orphanage/donations/1/decision", orphanageToken,
		map[string]string{"status": "Rejected", "note": "mistake"})

	// Admin corrects the wrong decision via the explicit override path
	w := doJSON(t, r, http.MethodPut, "/api/admin/donations/1/status", adminToken,
		map[string]string{"status": "Accepted", "reason": "orphanage phoned in a correction"})
	if w.Code != http.StatusOK {
		t.Fatalf("force override failed: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/donations/status/DOC-1", "", nil)
	if got := decodeBody(t, w)["status"]; got != "Accepted" {
		t.Errorf("expected Accepted after override, got %v", got)
	}

	// Detail view carries the full history: Pending, Rejected, Accepted
	w = doJSON(t, r, http.MethodGet, "/api/admin/donations/1", adminToken, nil)
	donation, _ := decodeBody(t, w)["donation"].(map[string]interface{})
	history, _ := donation["status_history"].([]interface{})
	if w.Code != http.StatusOK {
		t.Fatalf("donation detail failed: %d", w.Code)
	}
	if len(history) != 3 {
		t.Errorf("expected 3 history entries, got %d", len(history))
	}
}
