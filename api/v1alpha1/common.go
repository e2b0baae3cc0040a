package v1alpha1

type ReportFormat string

const (
	ReportFormatText ReportFormat = "text"
	ReportFormatCSV  ReportFormat = "csv"
)

func StringToReportFormat(s string) ReportFormat {
	switch s {
	case string(ReportFormatCSV):
		return ReportFormatCSV
	case string(ReportFormatText):
		return ReportFormatText
	default:
		return ReportFormatText
	}
}
