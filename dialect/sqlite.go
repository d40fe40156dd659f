package dialect

func sqliteCapabilities(int) Capabilities {
	return Capabilities{
		SupportsUpdateJoin: false,
		SupportsUpdateFrom: true,

		SupportsLimitOffset: true,
		OffsetRequiresLimit: "-1",

		SupportsRecursiveKeyword: true,
		SupportsTableAliasAs:     true,
	}
}
