package models

// Session role constants
const (
	RoleAdmin = "admin"
)

// Request types

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Response types

type PingResponse struct {
	OK bool  `json:"ok"`
	TS int64 `json:"ts"` // epoch millis
}

type LoginResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

type LogoutResponse struct {
	OK       bool   `json:"ok"`
	Redirect string `json:"redirect,omitempty"`
}

// Results arrays are always present in list responses, never null.

type FamiliesResponse struct {
	Results []Family `json:"results"`
}

type MembersResponse struct {
	Results []MemberWithFamily `json:"results"`
}

type FamilyLookupResponse struct {
	Found   bool     `json:"found"`
	Family  *Family  `json:"family,omitempty"`
	Members []Member `json:"members,omitempty"`
}

// Domain types

type Family struct {
	FamilyID      int64   `json:"family_id"`
	FamilySrNo    string  `json:"family_sr_no"`
	FamilyName    string  `json:"family_name"`
	HeadOfFamily  string  `json:"head_of_family"`
	CommunityName *string `json:"community_name,omitempty"`
	ZoneNo        *int64  `json:"zone_no,omitempty"`
	ContactPhone  *string `json:"contact_phone,omitempty"`
}

type Member struct {
	ID           int64   `json:"id"`
	FamilyID     int64   `json:"family_id"`
	SrNoInFamily int64   `json:"sr_no_in_family"`
	FullName     string  `json:"full_name"`
	Relation     *string `json:"relation,omitempty"`
	Phone        *string `json:"phone,omitempty"`
}

// MemberWithFamily joins a member with its parent family's display
// serial and head-of-family for merged listings.
type MemberWithFamily struct {
	Member
	FamilySrNo   string `json:"family_sr_no"`
	HeadOfFamily string `json:"head_of_family"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
