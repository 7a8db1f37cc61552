package columns

const (
	ErrMsgBadTimestamp = "Bad timestamp format, expected RFC 3339 or YYYY-MM-DD [HH:MM:SS]"
	ErrMsgBadYearMonth = "Bad year-month format, expected YYYY-MM"
	ErrMsgBadInterval  = "Bad interval format, expected [N days] [-]H:MM:SS[.ffffff]"
	ErrMsgBadRange     = "Bad range literal, expected empty or [lo,hi) style bounds"
	ErrMsgBadBitString = "Bad bit string, expected only 0 and 1 characters"
)
