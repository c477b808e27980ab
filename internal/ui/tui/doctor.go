package tui

import (
	"fmt"
	"strings"
)

// DoctorStatus is the outcome of one doctor check.
type DoctorStatus int

// Doctor check outcomes.
const (
	DoctorOK DoctorStatus = iota
	DoctorWarning
	DoctorMissing
)

// DoctorRow is one line of the doctor report.
type DoctorRow struct {
	Name   string
	Detail string
	Status DoctorStatus
}

// DoctorSection groups related rows under a heading.
type DoctorSection struct {
	Title string
	Rows  []DoctorRow
}

// RenderDoctor renders the doctor report.
func RenderDoctor(sections []DoctorSection) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("  create-bluewaves-app doctor"))
	b.WriteString("\n")

	for _, section := range sections {
		b.WriteString(sectionStyle.Render("  " + section.Title))
		b.WriteString("\n")
		for _, row := range section.Rows {
			icon, style := doctorIcon(row.Status)
			fmt.Fprintf(&b, "    %s %s", style(icon), style(row.Name))
			if row.Detail != "" {
				b.WriteString(dimStyle.Render("  " + row.Detail))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func doctorIcon(status DoctorStatus) (string, styleFunc) {
	switch status {
	case DoctorOK:
		return checkMark, sf(readyStyle)
	case DoctorWarning:
		return warnMark, sf(warningStyle)
	default:
		return crossMark, sf(failedStyle)
	}
}
