package document

import "hris-dashboard/internal/employee"

// CreateDocumentRequest carries no upload date: it is always stamped with
// the day of creation.
type CreateDocumentRequest struct {
	Title      string        `json:"title"`
	Category   string        `json:"category"`
	FileType   string        `json:"fileType"`
	Size       int64         `json:"size"`
	EmployeeID *employee.Ref `json:"employeeId"`
	Shared     bool          `json:"shared"`
}

// UpdateDocumentRequest is a shallow patch: nil fields are left untouched.
// A document cannot be made public again through a patch.
type UpdateDocumentRequest struct {
	Title      *string       `json:"title"`
	Category   *string       `json:"category"`
	FileType   *string       `json:"fileType"`
	Size       *int64        `json:"size"`
	UploadDate *string       `json:"uploadDate"`
	EmployeeID *employee.Ref `json:"employeeId"`
	Shared     *bool         `json:"shared"`
}

func (p UpdateDocumentRequest) applyTo(d *Document) {
	setIf(&d.Title, p.Title)
	setIf(&d.Category, p.Category)
	setIf(&d.FileType, p.FileType)
	setIf(&d.Size, p.Size)
	setIf(&d.UploadDate, p.UploadDate)
	setIf(&d.Shared, p.Shared)
	if p.EmployeeID != nil {
		ref := *p.EmployeeID
		d.EmployeeID = &ref
	}
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
