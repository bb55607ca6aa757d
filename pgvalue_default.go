package pgvalue

import "fmt"

// OIDs of the types in the PostgreSQL system catalog, from pg_type.h.
const (
	BoolOID               OID = 16
	ByteaOID              OID = 17
	QCharOID              OID = 18
	NameOID               OID = 19
	Int8OID               OID = 20
	Int2OID               OID = 21
	Int2VectorOID         OID = 22
	Int4OID               OID = 23
	RegprocOID            OID = 24
	TextOID               OID = 25
	OIDOID                OID = 26
	TIDOID                OID = 27
	XIDOID                OID = 28
	CIDOID                OID = 29
	OIDVectorOID          OID = 30
	PgTypeOID             OID = 71
	PgAttributeOID        OID = 75
	PgProcOID             OID = 81
	PgClassOID            OID = 83
	JSONOID               OID = 114
	XMLOID                OID = 142
	XMLArrayOID           OID = 143
	PgNodeTreeOID         OID = 194
	JSONArrayOID          OID = 199
	SmgrOID               OID = 210
	PointOID              OID = 600
	LsegOID               OID = 601
	PathOID               OID = 602
	BoxOID                OID = 603
	PolygonOID            OID = 604
	LineOID               OID = 628
	LineArrayOID          OID = 629
	CIDROID               OID = 650
	CIDRArrayOID          OID = 651
	Float4OID             OID = 700
	Float8OID             OID = 701
	AbstimeOID            OID = 702
	ReltimeOID            OID = 703
	TintervalOID          OID = 704
	UnknownOID            OID = 705
	CircleOID             OID = 718
	CircleArrayOID        OID = 719
	MoneyOID              OID = 790
	MoneyArrayOID         OID = 791
	MacaddrOID            OID = 829
	InetOID               OID = 869
	BoolArrayOID          OID = 1000
	ByteaArrayOID         OID = 1001
	QCharArrayOID         OID = 1002
	NameArrayOID          OID = 1003
	Int2ArrayOID          OID = 1005
	Int2VectorArrayOID    OID = 1006
	Int4ArrayOID          OID = 1007
	RegprocArrayOID       OID = 1008
	TextArrayOID          OID = 1009
	TIDArrayOID           OID = 1010
	XIDArrayOID           OID = 1011
	CIDArrayOID           OID = 1012
	OIDVectorArrayOID     OID = 1013
	BPCharArrayOID        OID = 1014
	VarcharArrayOID       OID = 1015
	Int8ArrayOID          OID = 1016
	PointArrayOID         OID = 1017
	LsegArrayOID          OID = 1018
	PathArrayOID          OID = 1019
	BoxArrayOID           OID = 1020
	Float4ArrayOID        OID = 1021
	Float8ArrayOID        OID = 1022
	AbstimeArrayOID       OID = 1023
	ReltimeArrayOID       OID = 1024
	TintervalArrayOID     OID = 1025
	PolygonArrayOID       OID = 1027
	OIDArrayOID           OID = 1028
	ACLItemOID            OID = 1033
	ACLItemArrayOID       OID = 1034
	MacaddrArrayOID       OID = 1040
	InetArrayOID          OID = 1041
	BPCharOID             OID = 1042
	VarcharOID            OID = 1043
	DateOID               OID = 1082
	TimeOID               OID = 1083
	TimestampOID          OID = 1114
	TimestampArrayOID     OID = 1115
	DateArrayOID          OID = 1182
	TimeArrayOID          OID = 1183
	TimestamptzOID        OID = 1184
	TimestamptzArrayOID   OID = 1185
	IntervalOID           OID = 1186
	IntervalArrayOID      OID = 1187
	NumericArrayOID       OID = 1231
	CstringArrayOID       OID = 1263
	TimetzOID             OID = 1266
	TimetzArrayOID        OID = 1270
	BitOID                OID = 1560
	BitArrayOID           OID = 1561
	VarbitOID             OID = 1562
	VarbitArrayOID        OID = 1563
	NumericOID            OID = 1700
	RefcursorOID          OID = 1790
	RefcursorArrayOID     OID = 2201
	RegprocedureOID       OID = 2202
	RegoperOID            OID = 2203
	RegoperatorOID        OID = 2204
	RegclassOID           OID = 2205
	RegtypeOID            OID = 2206
	RegprocedureArrayOID  OID = 2207
	RegoperArrayOID       OID = 2208
	RegoperatorArrayOID   OID = 2209
	RegclassArrayOID      OID = 2210
	RegtypeArrayOID       OID = 2211
	RecordOID             OID = 2249
	CstringOID            OID = 2275
	AnyOID                OID = 2276
	AnyArrayOID           OID = 2277
	VoidOID               OID = 2278
	TriggerOID            OID = 2279
	LanguageHandlerOID    OID = 2280
	InternalOID           OID = 2281
	OpaqueOID             OID = 2282
	AnyelementOID         OID = 2283
	RecordArrayOID        OID = 2287
	AnynonarrayOID        OID = 2776
	TxidSnapshotArrayOID  OID = 2949
	UUIDOID               OID = 2950
	UUIDArrayOID          OID = 2951
	TxidSnapshotOID       OID = 2970
	FdwHandlerOID         OID = 3115
	PgLSNOID              OID = 3220
	PgLSNArrayOID         OID = 3221
	AnyenumOID            OID = 3500
	TsvectorOID           OID = 3614
	TsqueryOID            OID = 3615
	GtsvectorOID          OID = 3642
	TsvectorArrayOID      OID = 3643
	GtsvectorArrayOID     OID = 3644
	TsqueryArrayOID       OID = 3645
	RegconfigOID          OID = 3734
	RegconfigArrayOID     OID = 3735
	RegdictionaryOID      OID = 3769
	RegdictionaryArrayOID OID = 3770
	JSONBOID              OID = 3802
	JSONBArrayOID         OID = 3807
	AnyrangeOID           OID = 3831
	EventTriggerOID       OID = 3838
	Int4rangeOID          OID = 3904
	Int4rangeArrayOID     OID = 3905
	NumrangeOID           OID = 3906
	NumrangeArrayOID      OID = 3907
	TsrangeOID            OID = 3908
	TsrangeArrayOID       OID = 3909
	TstzrangeOID          OID = 3910
	TstzrangeArrayOID     OID = 3911
	DaterangeOID          OID = 3912
	DaterangeArrayOID     OID = 3913
	Int8rangeOID          OID = 3926
	Int8rangeArrayOID     OID = 3927
)

// catalogRow is one entry of the static type catalog. Array and range rows
// name their element type by OID; the element's own row must also be
// present.
type catalogRow struct {
	oid  OID
	name string
	code KindCode
	elem OID
}

var catalog = []catalogRow{
	{oid: BoolOID, name: "bool", code: KindSimple},
	{oid: ByteaOID, name: "bytea", code: KindSimple},
	{oid: QCharOID, name: "char", code: KindSimple},
	{oid: NameOID, name: "name", code: KindSimple},
	{oid: Int8OID, name: "int8", code: KindSimple},
	{oid: Int2OID, name: "int2", code: KindSimple},
	{oid: Int2VectorOID, name: "int2vector", code: KindArray, elem: Int2OID},
	{oid: Int4OID, name: "int4", code: KindSimple},
	{oid: RegprocOID, name: "regproc", code: KindSimple},
	{oid: TextOID, name: "text", code: KindSimple},
	{oid: OIDOID, name: "oid", code: KindSimple},
	{oid: TIDOID, name: "tid", code: KindSimple},
	{oid: XIDOID, name: "xid", code: KindSimple},
	{oid: CIDOID, name: "cid", code: KindSimple},
	{oid: OIDVectorOID, name: "oidvector", code: KindArray, elem: OIDOID},
	{oid: PgTypeOID, name: "pg_type", code: KindSimple},
	{oid: PgAttributeOID, name: "pg_attribute", code: KindSimple},
	{oid: PgProcOID, name: "pg_proc", code: KindSimple},
	{oid: PgClassOID, name: "pg_class", code: KindSimple},
	{oid: JSONOID, name: "json", code: KindSimple},
	{oid: XMLOID, name: "xml", code: KindSimple},
	{oid: XMLArrayOID, name: "_xml", code: KindArray, elem: XMLOID},
	{oid: PgNodeTreeOID, name: "pg_node_tree", code: KindSimple},
	{oid: JSONArrayOID, name: "_json", code: KindArray, elem: JSONOID},
	{oid: SmgrOID, name: "smgr", code: KindSimple},
	{oid: PointOID, name: "point", code: KindSimple},
	{oid: LsegOID, name: "lseg", code: KindSimple},
	{oid: PathOID, name: "path", code: KindSimple},
	{oid: BoxOID, name: "box", code: KindSimple},
	{oid: PolygonOID, name: "polygon", code: KindSimple},
	{oid: LineOID, name: "line", code: KindSimple},
	{oid: LineArrayOID, name: "_line", code: KindArray, elem: LineOID},
	{oid: CIDROID, name: "cidr", code: KindSimple},
	{oid: CIDRArrayOID, name: "_cidr", code: KindArray, elem: CIDROID},
	{oid: Float4OID, name: "float4", code: KindSimple},
	{oid: Float8OID, name: "float8", code: KindSimple},
	{oid: AbstimeOID, name: "abstime", code: KindSimple},
	{oid: ReltimeOID, name: "reltime", code: KindSimple},
	{oid: TintervalOID, name: "tinterval", code: KindSimple},
	{oid: UnknownOID, name: "unknown", code: KindSimple},
	{oid: CircleOID, name: "circle", code: KindSimple},
	{oid: CircleArrayOID, name: "_circle", code: KindArray, elem: CircleOID},
	{oid: MoneyOID, name: "money", code: KindSimple},
	{oid: MoneyArrayOID, name: "_money", code: KindArray, elem: MoneyOID},
	{oid: MacaddrOID, name: "macaddr", code: KindSimple},
	{oid: InetOID, name: "inet", code: KindSimple},
	{oid: BoolArrayOID, name: "_bool", code: KindArray, elem: BoolOID},
	{oid: ByteaArrayOID, name: "_bytea", code: KindArray, elem: ByteaOID},
	{oid: QCharArrayOID, name: "_char", code: KindArray, elem: QCharOID},
	{oid: NameArrayOID, name: "_name", code: KindArray, elem: NameOID},
	{oid: Int2ArrayOID, name: "_int2", code: KindArray, elem: Int2OID},
	{oid: Int2VectorArrayOID, name: "_int2vector", code: KindArray, elem: Int2VectorOID},
	{oid: Int4ArrayOID, name: "_int4", code: KindArray, elem: Int4OID},
	{oid: RegprocArrayOID, name: "_regproc", code: KindArray, elem: RegprocOID},
	{oid: TextArrayOID, name: "_text", code: KindArray, elem: TextOID},
	{oid: TIDArrayOID, name: "_tid", code: KindArray, elem: TIDOID},
	{oid: XIDArrayOID, name: "_xid", code: KindArray, elem: XIDOID},
	{oid: CIDArrayOID, name: "_cid", code: KindArray, elem: CIDOID},
	{oid: OIDVectorArrayOID, name: "_oidvector", code: KindArray, elem: OIDVectorOID},
	{oid: BPCharArrayOID, name: "_bpchar", code: KindArray, elem: BPCharOID},
	{oid: VarcharArrayOID, name: "_varchar", code: KindArray, elem: VarcharOID},
	{oid: Int8ArrayOID, name: "_int8", code: KindArray, elem: Int8OID},
	{oid: PointArrayOID, name: "_point", code: KindArray, elem: PointOID},
	{oid: LsegArrayOID, name: "_lseg", code: KindArray, elem: LsegOID},
	{oid: PathArrayOID, name: "_path", code: KindArray, elem: PathOID},
	{oid: BoxArrayOID, name: "_box", code: KindArray, elem: BoxOID},
	{oid: Float4ArrayOID, name: "_float4", code: KindArray, elem: Float4OID},
	{oid: Float8ArrayOID, name: "_float8", code: KindArray, elem: Float8OID},
	{oid: AbstimeArrayOID, name: "_abstime", code: KindArray, elem: AbstimeOID},
	{oid: ReltimeArrayOID, name: "_reltime", code: KindArray, elem: ReltimeOID},
	{oid: TintervalArrayOID, name: "_tinterval", code: KindArray, elem: TintervalOID},
	{oid: PolygonArrayOID, name: "_polygon", code: KindArray, elem: PolygonOID},
	{oid: OIDArrayOID, name: "_oid", code: KindArray, elem: OIDOID},
	{oid: ACLItemOID, name: "aclitem", code: KindSimple},
	{oid: ACLItemArrayOID, name: "_aclitem", code: KindArray, elem: ACLItemOID},
	{oid: MacaddrArrayOID, name: "_macaddr", code: KindArray, elem: MacaddrOID},
	{oid: InetArrayOID, name: "_inet", code: KindArray, elem: InetOID},
	{oid: BPCharOID, name: "bpchar", code: KindSimple},
	{oid: VarcharOID, name: "varchar", code: KindSimple},
	{oid: DateOID, name: "date", code: KindSimple},
	{oid: TimeOID, name: "time", code: KindSimple},
	{oid: TimestampOID, name: "timestamp", code: KindSimple},
	{oid: TimestampArrayOID, name: "_timestamp", code: KindArray, elem: TimestampOID},
	{oid: DateArrayOID, name: "_date", code: KindArray, elem: DateOID},
	{oid: TimeArrayOID, name: "_time", code: KindArray, elem: TimeOID},
	{oid: TimestamptzOID, name: "timestamptz", code: KindSimple},
	{oid: TimestamptzArrayOID, name: "_timestamptz", code: KindArray, elem: TimestamptzOID},
	{oid: IntervalOID, name: "interval", code: KindSimple},
	{oid: IntervalArrayOID, name: "_interval", code: KindArray, elem: IntervalOID},
	{oid: NumericArrayOID, name: "_numeric", code: KindArray, elem: NumericOID},
	{oid: CstringArrayOID, name: "_cstring", code: KindArray, elem: CstringOID},
	{oid: TimetzOID, name: "timetz", code: KindSimple},
	{oid: TimetzArrayOID, name: "_timetz", code: KindArray, elem: TimetzOID},
	{oid: BitOID, name: "bit", code: KindSimple},
	{oid: BitArrayOID, name: "_bit", code: KindArray, elem: BitOID},
	{oid: VarbitOID, name: "varbit", code: KindSimple},
	{oid: VarbitArrayOID, name: "_varbit", code: KindArray, elem: VarbitOID},
	{oid: NumericOID, name: "numeric", code: KindSimple},
	{oid: RefcursorOID, name: "refcursor", code: KindSimple},
	{oid: RefcursorArrayOID, name: "_refcursor", code: KindArray, elem: RefcursorOID},
	{oid: RegprocedureOID, name: "regprocedure", code: KindSimple},
	{oid: RegoperOID, name: "regoper", code: KindSimple},
	{oid: RegoperatorOID, name: "regoperator", code: KindSimple},
	{oid: RegclassOID, name: "regclass", code: KindSimple},
	{oid: RegtypeOID, name: "regtype", code: KindSimple},
	{oid: RegprocedureArrayOID, name: "_regprocedure", code: KindArray, elem: RegprocedureOID},
	{oid: RegoperArrayOID, name: "_regoper", code: KindArray, elem: RegoperOID},
	{oid: RegoperatorArrayOID, name: "_regoperator", code: KindArray, elem: RegoperatorOID},
	{oid: RegclassArrayOID, name: "_regclass", code: KindArray, elem: RegclassOID},
	{oid: RegtypeArrayOID, name: "_regtype", code: KindArray, elem: RegtypeOID},
	{oid: RecordOID, name: "record", code: KindSimple},
	{oid: CstringOID, name: "cstring", code: KindSimple},
	{oid: AnyOID, name: "any", code: KindSimple},
	{oid: AnyArrayOID, name: "anyarray", code: KindArray, elem: AnyOID},
	{oid: VoidOID, name: "void", code: KindSimple},
	{oid: TriggerOID, name: "trigger", code: KindSimple},
	{oid: LanguageHandlerOID, name: "language_handler", code: KindSimple},
	{oid: InternalOID, name: "internal", code: KindSimple},
	{oid: OpaqueOID, name: "opaque", code: KindSimple},
	{oid: AnyelementOID, name: "anyelement", code: KindSimple},
	{oid: RecordArrayOID, name: "_record", code: KindArray, elem: RecordOID},
	{oid: AnynonarrayOID, name: "anynonarray", code: KindSimple},
	{oid: TxidSnapshotArrayOID, name: "_txid_snapshot", code: KindArray, elem: TxidSnapshotOID},
	{oid: UUIDOID, name: "uuid", code: KindSimple},
	{oid: UUIDArrayOID, name: "_uuid", code: KindArray, elem: UUIDOID},
	{oid: TxidSnapshotOID, name: "txid_snapshot", code: KindSimple},
	{oid: FdwHandlerOID, name: "fdw_handler", code: KindSimple},
	{oid: PgLSNOID, name: "pg_lsn", code: KindSimple},
	{oid: PgLSNArrayOID, name: "_pg_lsn", code: KindArray, elem: PgLSNOID},
	{oid: AnyenumOID, name: "anyenum", code: KindSimple},
	{oid: TsvectorOID, name: "tsvector", code: KindSimple},
	{oid: TsqueryOID, name: "tsquery", code: KindSimple},
	{oid: GtsvectorOID, name: "gtsvector", code: KindSimple},
	{oid: TsvectorArrayOID, name: "_tsvector", code: KindArray, elem: TsvectorOID},
	{oid: GtsvectorArrayOID, name: "_gtsvector", code: KindArray, elem: GtsvectorOID},
	{oid: TsqueryArrayOID, name: "_tsquery", code: KindArray, elem: TsqueryOID},
	{oid: RegconfigOID, name: "regconfig", code: KindSimple},
	{oid: RegconfigArrayOID, name: "_regconfig", code: KindArray, elem: RegconfigOID},
	{oid: RegdictionaryOID, name: "regdictionary", code: KindSimple},
	{oid: RegdictionaryArrayOID, name: "_regdictionary", code: KindArray, elem: RegdictionaryOID},
	{oid: JSONBOID, name: "jsonb", code: KindSimple},
	{oid: JSONBArrayOID, name: "_jsonb", code: KindArray, elem: JSONBOID},
	{oid: AnyrangeOID, name: "anyrange", code: KindSimple},
	{oid: EventTriggerOID, name: "event_trigger", code: KindSimple},
	{oid: Int4rangeOID, name: "int4range", code: KindRange, elem: Int4OID},
	{oid: Int4rangeArrayOID, name: "_int4range", code: KindArray, elem: Int4rangeOID},
	{oid: NumrangeOID, name: "numrange", code: KindRange, elem: NumericOID},
	{oid: NumrangeArrayOID, name: "_numrange", code: KindArray, elem: NumrangeOID},
	{oid: TsrangeOID, name: "tsrange", code: KindRange, elem: TimestampOID},
	{oid: TsrangeArrayOID, name: "_tsrange", code: KindArray, elem: TsrangeOID},
	{oid: TstzrangeOID, name: "tstzrange", code: KindRange, elem: TimestamptzOID},
	{oid: TstzrangeArrayOID, name: "_tstzrange", code: KindArray, elem: TstzrangeOID},
	{oid: DaterangeOID, name: "daterange", code: KindRange, elem: DateOID},
	{oid: DaterangeArrayOID, name: "_daterange", code: KindArray, elem: DaterangeOID},
	{oid: Int8rangeOID, name: "int8range", code: KindRange, elem: Int8OID},
	{oid: Int8rangeArrayOID, name: "_int8range", code: KindArray, elem: Int8rangeOID},
}

// builtinTypes holds the canonical descriptor for every catalog type. It is
// built once at package init and never modified afterward, so concurrent
// readers need no locking.
var builtinTypes map[OID]*Type

func init() {
	builtinTypes = make(map[OID]*Type, len(catalog))

	// Array and range rows may precede their element row, and arrays of
	// arrays nest one level deeper, so resolve in passes.
	rows := catalog
	for len(rows) > 0 {
		var deferred []catalogRow
		for _, row := range rows {
			kind := SimpleKind()
			switch row.code {
			case KindArray, KindRange:
				elem, ok := builtinTypes[row.elem]
				if !ok {
					deferred = append(deferred, row)
					continue
				}
				if row.code == KindArray {
					kind = ArrayKind(elem)
				} else {
					kind = RangeKind(elem)
				}
			}
			builtinTypes[row.oid] = &Type{name: row.name, oid: row.oid, kind: kind, schema: "pg_catalog"}
		}
		if len(deferred) == len(rows) {
			panic(fmt.Sprintf("pgvalue: catalog rows reference element types that are not in the catalog: %v", deferred))
		}
		rows = deferred
	}
}

// TypeForOID returns the canonical descriptor of the catalog type with the
// given OID. It returns (nil, false) for OIDs outside the catalog; such
// types are described with NewType after a catalog lookup by the caller.
func TypeForOID(oid OID) (*Type, bool) {
	t, ok := builtinTypes[oid]
	return t, ok
}
