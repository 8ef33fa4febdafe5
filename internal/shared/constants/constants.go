package constants

const (
	// DefaultHeaderTableSize is the dynamic table size an encoder starts
	// with before any SETTINGS_HEADER_TABLE_SIZE negotiation, per RFC 7541
	// §4.2 and RFC 7540 §6.5.2.
	DefaultHeaderTableSize = 4096

	// MaxHeaderTableSize is the cap LoadConfig will clamp a configured
	// header table size down to, regardless of what a config file requests.
	MaxHeaderTableSize = 1 << 20

	// MaxHeaderListFields bounds how many header pairs hpackctl will
	// attempt to encode in one block, guarding against pathological input
	// files.
	MaxHeaderListFields = 4096
)
