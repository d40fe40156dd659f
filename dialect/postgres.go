package dialect

func postgresCapabilities(int) Capabilities {
	return Capabilities{
		SupportsUpdateJoin: false,
		SupportsUpdateFrom: true,

		SupportsLimitOffset: true,

		SupportsRecursiveKeyword: true,
		SupportsTableAliasAs:     true,
	}
}
