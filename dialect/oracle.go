package dialect

// Oracle12c is the first Oracle release with OFFSET ... FETCH.
const Oracle12c = 12

// Oracle rejects AS in front of a table alias.
func oracleCapabilities(version int) Capabilities {
	return Capabilities{
		SupportsOffsetFetch: version == 0 || version >= Oracle12c,

		SupportsRecursiveKeyword: false,
		SupportsTableAliasAs:     false,
	}
}
