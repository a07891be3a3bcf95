package dto

import "encoding/json"

type LoginRequest struct {
	IdentityNumber string `json:"identityNumber"`
	Password       string `json:"password"`
}

// UnmarshalJSON accepts numbers where strings are expected, so {"identityNumber":555} works.
func (r *LoginRequest) UnmarshalJSON(b []byte) error {
	type alias LoginRequest
	aux := struct {
		*alias
		IdentityNumber flexString `json:"identityNumber"`
		Password       flexString `json:"password"`
	}{alias: (*alias)(r)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	r.IdentityNumber = string(aux.IdentityNumber)
	r.Password = string(aux.Password)
	return nil
}

type RegisterRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	IdentityNumber string `json:"identityNumber"`
	Password       string `json:"password"`
	Phone          string `json:"phone"`
	PostalCode     string `json:"postalCode"`
	Street         string `json:"street"`
	District       string `json:"district"`
	City           string `json:"city"`
	State          string `json:"state"`
	Image          string `json:"image"`
	UserTypeRef    *int64 `json:"userTypeRef"`
}

// UnmarshalJSON tolerates numeric documents sent as numbers and a userTypeRef
// sent as a string ("2"). An empty userTypeRef is treated as absent.
func (r *RegisterRequest) UnmarshalJSON(b []byte) error {
	type alias RegisterRequest
	aux := struct {
		*alias
		IdentityNumber flexString `json:"identityNumber"`
		Password       flexString `json:"password"`
		Phone          flexString `json:"phone"`
		PostalCode     flexString `json:"postalCode"`
		UserTypeRef    flexInt    `json:"userTypeRef"`
	}{alias: (*alias)(r)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	r.IdentityNumber = string(aux.IdentityNumber)
	r.Password = string(aux.Password)
	r.Phone = string(aux.Phone)
	r.PostalCode = string(aux.PostalCode)
	r.UserTypeRef = aux.UserTypeRef.v
	return nil
}

type RegisterClassRequest struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Image       string `json:"image"`
}

func (r *RegisterClassRequest) UnmarshalJSON(b []byte) error {
	type alias RegisterClassRequest
	aux := struct {
		*alias
		Code flexString `json:"code"`
	}{alias: (*alias)(r)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	r.Code = string(aux.Code)
	return nil
}
