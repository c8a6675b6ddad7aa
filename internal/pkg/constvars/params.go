package constvars

const (
	URLParamID = "id"
)

const (
	QueryParamStatus    = "status"
	QueryParamSearch    = "search"
	QueryParamPatientID = "patientId"
	QueryParamUnread    = "unread"
)
