package dialect

// SQL Server versions are expressed as release years.
const (
	SQLServer2012 = 2012
	SQLServer2016 = 2016
)

func sqlServerCapabilities(version int) Capabilities {
	return Capabilities{
		SupportsUpdateJoin: false,
		SupportsUpdateFrom: true,
		SupportsDeleteJoin: true,

		SupportsTop:         true,
		SupportsOffsetFetch: version == 0 || version >= SQLServer2012,
		OffsetRequiresOrder: true,

		SupportsForJSON:          version == 0 || version >= SQLServer2016,
		SupportsRecursiveKeyword: false,
		SupportsTableAliasAs:     true,
	}
}
