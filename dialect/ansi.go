package dialect

func ansiCapabilities(int) Capabilities {
	return Capabilities{
		SupportsUpdateFrom: true,

		SupportsLimitOffset: true,

		SupportsRecursiveKeyword: true,
		SupportsTableAliasAs:     true,
	}
}
