package hawk

// AuthParams carries the parameters of a Hawk "Authorization" (or
// "Server-Authorization") header: both the fields a server parses out
// of an inbound header and the fields a client fills in to build an
// outbound one.
//
// Empty fields are represented by the empty string; Timestamp == 0
// marks "unset" on the construction path, matching the C reference's
// ts = 0 convention.
type AuthParams struct {
	ID        string
	MAC       string
	Hash      string
	Nonce     string
	App       string
	Dlg       string
	Ext       string
	Timestamp int64
}

// TimestampParams carries a server's "WWW-Authenticate" timestamp
// challenge: the server's notion of now, and the MAC over it.
type TimestampParams struct {
	Timestamp int64
	MAC       string
}
