package document

import (
	"math"
	"strconv"

	"hris-dashboard/internal/employee"
)

type Document struct {
	ID         string        `json:"id" yaml:"id"`
	Title      string        `json:"title" yaml:"title"`
	Category   string        `json:"category" yaml:"category"`
	FileType   string        `json:"fileType" yaml:"fileType"`
	Size       int64         `json:"size" yaml:"size"`
	UploadDate string        `json:"uploadDate" yaml:"uploadDate"`
	EmployeeID *employee.Ref `json:"employeeId" yaml:"employeeId"`
	Shared     bool          `json:"shared" yaml:"shared"`
}

// Clone returns a deep copy.
func (d Document) Clone() Document {
	if d.EmployeeID != nil {
		ref := *d.EmployeeID
		d.EmployeeID = &ref
	}
	return d
}

// IsPublic reports whether the document belongs to no employee.
func (d Document) IsPublic() bool {
	return d.EmployeeID == nil
}

var sizeUnits = [...]string{"Bytes", "KB", "MB", "GB"}

// HumanSize renders Size in binary units with at most two decimals,
// e.g. "1.5 MB".
func (d Document) HumanSize() string {
	if d.Size <= 0 {
		return "0 Bytes"
	}
	i := int(math.Floor(math.Log(float64(d.Size)) / math.Log(1024)))
	i = min(i, len(sizeUnits)-1)
	v := math.Round(float64(d.Size)/math.Pow(1024, float64(i))*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + sizeUnits[i]
}
