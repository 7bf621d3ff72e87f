package writer

import (
	"fmt"
	"strings"
)

// DocType identifies a formal document variant.
type DocType string

// Supported document variants.
const (
	TypeRTI         DocType = "RTI"
	TypeComplaint   DocType = "COMPLAINT"
	TypeLegal       DocType = "LEGAL"
	TypeAppeal      DocType = "APPEAL"
	TypePermission  DocType = "PERMISSION"
	TypeApplication DocType = "APPLICATION"
	TypeCustom      DocType = "CUSTOM"
)

// Label returns the human-readable document title used in prompts and
// history entries.
func (t DocType) Label() string {
	switch t {
	case TypeRTI:
		return "RTI Application"
	case TypeComplaint:
		return "Complaint Letter"
	case TypeLegal:
		return "Legal Notice"
	case TypeAppeal:
		return "Appeal Letter"
	case TypePermission:
		return "Permission Request"
	case TypeApplication:
		return "Government Application"
	case TypeCustom:
		return "Custom Document"
	default:
		return ""
	}
}

// Valid reports whether t names a supported variant.
func (t DocType) Valid() bool {
	return t.Label() != ""
}

// Applicant identifies the person the document is drafted for. Contact and
// Email are optional.
type Applicant struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
}

func (a Applicant) missing() []string {
	var out []string
	if strings.TrimSpace(a.Name) == "" {
		out = append(out, "applicant name")
	}
	if strings.TrimSpace(a.Address) == "" {
		out = append(out, "applicant address")
	}
	return out
}

// RTIDetails describes a Right to Information request.
type RTIDetails struct {
	Authority   string `json:"authority"`
	Subject     string `json:"subject"`
	Information string `json:"information"`
	Period      string `json:"period"`
}

func (d RTIDetails) missing() []string {
	var out []string
	if strings.TrimSpace(d.Authority) == "" {
		out = append(out, "authority")
	}
	if strings.TrimSpace(d.Subject) == "" {
		out = append(out, "subject")
	}
	if strings.TrimSpace(d.Information) == "" {
		out = append(out, "information")
	}
	return out
}

// ComplaintDetails describes a complaint to a public authority.
type ComplaintDetails struct {
	Authority string `json:"authority"`
	Subject   string `json:"subject"`
	Issue     string `json:"issue"`
	Location  string `json:"location"`
}

func (d ComplaintDetails) missing() []string {
	var out []string
	if strings.TrimSpace(d.Authority) == "" {
		out = append(out, "authority")
	}
	if strings.TrimSpace(d.Subject) == "" {
		out = append(out, "subject")
	}
	if strings.TrimSpace(d.Issue) == "" {
		out = append(out, "issue")
	}
	return out
}

// LegalDetails describes a legal notice.
type LegalDetails struct {
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Grievance string `json:"grievance"`
	Demand    string `json:"demand"`
}

func (d LegalDetails) missing() []string {
	var out []string
	if strings.TrimSpace(d.Recipient) == "" {
		out = append(out, "recipient")
	}
	if strings.TrimSpace(d.Subject) == "" {
		out = append(out, "subject")
	}
	if strings.TrimSpace(d.Grievance) == "" {
		out = append(out, "grievance")
	}
	if strings.TrimSpace(d.Demand) == "" {
		out = append(out, "demand")
	}
	return out
}

// AppealDetails describes an appeal against an earlier decision.
type AppealDetails struct {
	Authority string `json:"authority"`
	Reference string `json:"reference"`
	Decision  string `json:"decision"`
	Grounds   string `json:"grounds"`
}

func (d AppealDetails) missing() []string {
	var out []string
	if strings.TrimSpace(d.Authority) == "" {
		out = append(out, "authority")
	}
	if strings.TrimSpace(d.Decision) == "" {
		out = append(out, "decision")
	}
	if strings.TrimSpace(d.Grounds) == "" {
		out = append(out, "grounds")
	}
	return out
}

// PermissionDetails describes a permission request.
type PermissionDetails struct {
	Authority string `json:"authority"`
	Purpose   string `json:"purpose"`
	Date      string `json:"date"`
	Duration  string `json:"duration"`
}

func (d PermissionDetails) missing() []string {
	var out []string
	if strings.TrimSpace(d.Authority) == "" {
		out = append(out, "authority")
	}
	if strings.TrimSpace(d.Purpose) == "" {
		out = append(out, "purpose")
	}
	return out
}

// ApplicationDetails describes a general government application.
type ApplicationDetails struct {
	Department string `json:"department"`
	Subject    string `json:"subject"`
	Request    string `json:"request"`
}

func (d ApplicationDetails) missing() []string {
	var out []string
	if strings.TrimSpace(d.Department) == "" {
		out = append(out, "department")
	}
	if strings.TrimSpace(d.Subject) == "" {
		out = append(out, "subject")
	}
	if strings.TrimSpace(d.Request) == "" {
		out = append(out, "request")
	}
	return out
}

// CustomDetails describes a free-form document.
type CustomDetails struct {
	Recipient   string `json:"recipient"`
	Description string `json:"description"`
}

func (d CustomDetails) missing() []string {
	var out []string
	if strings.TrimSpace(d.Description) == "" {
		out = append(out, "description")
	}
	return out
}

// Request is the full drafting request. Exactly the details struct matching
// Type must be set.
type Request struct {
	Type      DocType   `json:"type"`
	Applicant Applicant `json:"applicant"`

	RTI         *RTIDetails         `json:"rti,omitempty"`
	Complaint   *ComplaintDetails   `json:"complaint,omitempty"`
	Legal       *LegalDetails       `json:"legal,omitempty"`
	Appeal      *AppealDetails      `json:"appeal,omitempty"`
	Permission  *PermissionDetails  `json:"permission,omitempty"`
	Application *ApplicationDetails `json:"application,omitempty"`
	Custom      *CustomDetails      `json:"custom,omitempty"`
}

// Validate checks the request for a supported type and all required fields.
func (r Request) Validate() error {
	if !r.Type.Valid() {
		return fmt.Errorf("%w: unknown document type %q", ErrInvalidInput, string(r.Type))
	}

	missing := r.Applicant.missing()
	details := r.detailsMissing()
	if details == nil {
		return fmt.Errorf("%w: missing %s details", ErrInvalidInput, strings.ToLower(string(r.Type)))
	}
	missing = append(missing, *details...)

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s", ErrInvalidInput, strings.Join(missing, ", "))
	}
	return nil
}

// detailsMissing returns the missing required fields of the variant details,
// or nil when the matching details struct itself is absent.
func (r Request) detailsMissing() *[]string {
	var out []string
	switch r.Type {
	case TypeRTI:
		if r.RTI == nil {
			return nil
		}
		out = r.RTI.missing()
	case TypeComplaint:
		if r.Complaint == nil {
			return nil
		}
		out = r.Complaint.missing()
	case TypeLegal:
		if r.Legal == nil {
			return nil
		}
		out = r.Legal.missing()
	case TypeAppeal:
		if r.Appeal == nil {
			return nil
		}
		out = r.Appeal.missing()
	case TypePermission:
		if r.Permission == nil {
			return nil
		}
		out = r.Permission.missing()
	case TypeApplication:
		if r.Application == nil {
			return nil
		}
		out = r.Application.missing()
	case TypeCustom:
		if r.Custom == nil {
			return nil
		}
		out = r.Custom.missing()
	}
	return &out
}

// Fields flattens the request into the prompt field map. Optional fields are
// included only when present.
func (r Request) Fields() map[string]string {
	fields := map[string]string{
		"Applicant Name":    r.Applicant.Name,
		"Applicant Address": r.Applicant.Address,
	}
	setOptional(fields, "Contact Number", r.Applicant.Contact)
	setOptional(fields, "Email", r.Applicant.Email)

	switch r.Type {
	case TypeRTI:
		fields["Public Authority"] = r.RTI.Authority
		fields["Subject"] = r.RTI.Subject
		fields["Information Sought"] = r.RTI.Information
		setOptional(fields, "Period", r.RTI.Period)
	case TypeComplaint:
		fields["Authority"] = r.Complaint.Authority
		fields["Subject"] = r.Complaint.Subject
		fields["Complaint Details"] = r.Complaint.Issue
		setOptional(fields, "Location", r.Complaint.Location)
	case TypeLegal:
		fields["Recipient"] = r.Legal.Recipient
		fields["Subject"] = r.Legal.Subject
		fields["Grievance"] = r.Legal.Grievance
		fields["Demand"] = r.Legal.Demand
	case TypeAppeal:
		fields["Authority"] = r.Appeal.Authority
		fields["Decision Appealed"] = r.Appeal.Decision
		fields["Grounds"] = r.Appeal.Grounds
		setOptional(fields, "Reference Number", r.Appeal.Reference)
	case TypePermission:
		fields["Authority"] = r.Permission.Authority
		fields["Purpose"] = r.Permission.Purpose
		setOptional(fields, "Date", r.Permission.Date)
		setOptional(fields, "Duration", r.Permission.Duration)
	case TypeApplication:
		fields["Department"] = r.Application.Department
		fields["Subject"] = r.Application.Subject
		fields["Request"] = r.Application.Request
	case TypeCustom:
		fields["Requirements"] = r.Custom.Description
		setOptional(fields, "Recipient", r.Custom.Recipient)
	}
	return fields
}

func setOptional(fields map[string]string, key, value string) {
	if strings.TrimSpace(value) != "" {
		fields[key] = value
	}
}
