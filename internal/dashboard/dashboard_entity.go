package dashboard

import "hris-dashboard/internal/department"

type Stats struct {
	TotalEmployees    int `json:"totalEmployees"`
	PendingLeaves     int `json:"pendingLeaves"`
	DocumentsCount    int `json:"documentsCount"`
	UpcomingBirthdays int `json:"upcomingBirthdays"`
}

// Activity is a feed entry derived on every Summary call; it is never
// stored.
type Activity struct {
	ID      int    `json:"id"`
	Type    string `json:"type"`
	Message string `json:"message"`
	Time    string `json:"time"`
	Icon    string `json:"icon"`
}

type Summary struct {
	Stats          Stats      `json:"stats"`
	RecentActivity []Activity `json:"recentActivity"`
}

type DepartmentHeadcount struct {
	department.Department
	TotalEmployees  int `json:"totalEmployees"`
	ActiveEmployees int `json:"activeEmployees"`
}

type DepartmentOverview struct {
	Departments      []DepartmentHeadcount `json:"departments"`
	TotalDepartments int                   `json:"totalDepartments"`
	TotalEmployees   int                   `json:"totalEmployees"`
	ActiveEmployees  int                   `json:"activeEmployees"`
	AvgPerDepartment int                   `json:"avgPerDepartment"`
}
