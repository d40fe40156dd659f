package dialect

// MySQL has no OFFSET without LIMIT, the largest unsigned BIGINT stands in for "all rows".
func mysqlCapabilities(int) Capabilities {
	return Capabilities{
		SupportsUpdateJoin: true,
		SupportsUpdateFrom: false,
		SupportsDeleteJoin: true,

		SupportsLimitOffset: true,
		OffsetRequiresLimit: "18446744073709551615",

		SupportsRecursiveKeyword: true,
		SupportsTableAliasAs:     true,
	}
}
