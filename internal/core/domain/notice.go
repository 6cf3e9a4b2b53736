package domain

// NoticeKind hints how the presentation layer should render a notice.
type NoticeKind string

const (
	NoticeInfo    NoticeKind = "info"
	NoticeSuccess NoticeKind = "success"
	NoticeDanger  NoticeKind = "danger"
)

// Notice is a user-facing message emitted by a workflow as data. The core
// never renders; the presentation layer decides how to display it.
type Notice struct {
	Title   string     `json:"title"`
	Message string     `json:"message"`
	Kind    NoticeKind `json:"kind"`
}
