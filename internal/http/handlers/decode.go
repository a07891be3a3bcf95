package handlers

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/hongminglow/escola-be/internal/models/dto"
)

const maxBodyBytes = 1 << 20

var errBadPayload = errors.New("invalid payload")

// decodeBody fills dst from a JSON body, or from url-encoded form values via
// fromForm for any other content type.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any, fromForm func(form func(string) string) error) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
			return errBadPayload
		}
		return nil
	}

	if err := r.ParseForm(); err != nil {
		return errBadPayload
	}
	return fromForm(r.PostForm.Get)
}

func loginFromForm(req *dto.LoginRequest) func(func(string) string) error {
	return func(form func(string) string) error {
		req.IdentityNumber = form("identityNumber")
		req.Password = form("password")
		return nil
	}
}

func registerFromForm(req *dto.RegisterRequest) func(func(string) string) error {
	return func(form func(string) string) error {
		req.Name = form("name")
		req.Email = form("email")
		req.IdentityNumber = form("identityNumber")
		req.Password = form("password")
		req.Phone = form("phone")
		req.PostalCode = form("postalCode")
		req.Street = form("street")
		req.District = form("district")
		req.City = form("city")
		req.State = form("state")
		req.Image = form("image")
		if ref := strings.TrimSpace(form("userTypeRef")); ref != "" {
			id, err := strconv.ParseInt(ref, 10, 64)
			if err != nil {
				return errBadPayload
			}
			req.UserTypeRef = &id
		}
		return nil
	}
}

func classFromForm(req *dto.RegisterClassRequest) func(func(string) string) error {
	return func(form func(string) string) error {
		req.Code = form("code")
		req.Description = form("description")
		req.StartDate = form("startDate")
		req.EndDate = form("endDate")
		req.Image = form("image")
		return nil
	}
}
