package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"hris-dashboard/internal/department"
	"hris-dashboard/internal/document"
	"hris-dashboard/internal/employee"
	"hris-dashboard/internal/leave"

	"github.com/spf13/cobra"
)

const (
	entityEmployees     = "employees"
	entityLeaveRequests = "leave-requests"
	entityDocuments     = "documents"
	entityDepartments   = "departments"
)

type listFlags struct {
	json       bool
	search     string
	department string
	status     string
	category   string
}

func newListCmd(c *cli) *cobra.Command {
	var f listFlags

	cmd := &cobra.Command{
		Use:       "list <employees|leave-requests|documents|departments>",
		Short:     "List the records of one entity, filtered like the dashboard pages",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{entityEmployees, entityLeaveRequests, entityDocuments, entityDepartments},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.list(cmd, args[0], f)
		},
	}

	cmd.Flags().BoolVar(&f.json, "json", false, "Output in JSON format")
	cmd.Flags().StringVarP(&f.search, "query", "q", "", "Case-insensitive search term")
	cmd.Flags().StringVar(&f.department, "department", "", "Employee department (\"all\" for any)")
	cmd.Flags().StringVar(&f.status, "status", "", "Leave status: all, pending, approved, rejected")
	cmd.Flags().StringVar(&f.category, "category", "", "Document category (\"all\" for any)")
	return cmd
}

func (c *cli) list(cmd *cobra.Command, entity string, f listFlags) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	switch entity {
	case entityEmployees:
		empls, err := c.services.Employees.GetAll(ctx)
		if err != nil {
			return err
		}
		empls = employee.Filter{Search: f.search, Department: f.department}.Apply(empls)
		if f.json {
			return writeJSON(out, empls)
		}
		return writeTable(out, "ID\tNAME\tROLE\tDEPARTMENT\tSTATUS", len(empls), func(i int) string {
			e := empls[i]
			return fmt.Sprintf("%s\t%s\t%s\t%s\t%s", e.ID, e.Name, e.Role, e.Department, e.Status)
		})

	case entityLeaveRequests:
		leaves, err := c.services.Leaves.GetAll(ctx)
		if err != nil {
			return err
		}
		leaves = leave.Filter{Status: f.status}.Apply(leaves)
		if f.json {
			return writeJSON(out, leaves)
		}
		return writeTable(out, "ID\tEMPLOYEE\tTYPE\tSTATUS\tDAYS", len(leaves), func(i int) string {
			lr := leaves[i]
			return fmt.Sprintf("%s\t%s\t%s\t%s\t%d", lr.ID, lr.EmployeeName, lr.Type, lr.Status, lr.Days)
		})

	case entityDocuments:
		docs, err := c.services.Documents.GetAll(ctx)
		if err != nil {
			return err
		}
		docs = document.Filter{Search: f.search, Category: f.category}.Apply(docs)
		if f.json {
			return writeJSON(out, docs)
		}
		return writeTable(out, "ID\tTITLE\tCATEGORY\tSIZE\tUPLOADED", len(docs), func(i int) string {
			d := docs[i]
			return fmt.Sprintf("%s\t%s\t%s\t%s\t%s", d.ID, d.Title, d.Category, d.HumanSize(), d.UploadDate)
		})

	case entityDepartments:
		depts, err := c.services.Departments.GetAll(ctx)
		if err != nil {
			return err
		}
		depts = department.Filter{Search: f.search}.Apply(depts)
		if f.json {
			return writeJSON(out, depts)
		}
		return writeTable(out, "ID\tNAME\tCODE\tMANAGER\tLOCATION", len(depts), func(i int) string {
			d := depts[i]
			return fmt.Sprintf("%s\t%s\t%s\t%s\t%s", d.ID, d.Name, d.Code, d.Manager, d.Location)
		})
	}

	return fmt.Errorf("unknown entity %q", entity)
}

func writeTable(w io.Writer, header string, n int, row func(i int) string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, header)
	for i := 0; i < n; i++ {
		fmt.Fprintln(tw, row(i))
	}
	return tw.Flush()
}
