package types

// Response is the body shape every endpoint answers with. The status code
// is duplicated into the body because the bot client reads it from there.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// ParserResponse is returned by /start_parser; Parser echoes the name the
// client asked for, in the casing it resolved to.
type ParserResponse struct {
	Response
	Parser string `json:"parser"`
}

// TableProcessResponse is returned by /start_table_process.
type TableProcessResponse struct {
	Response
	Method string `json:"method"`
}
