package pricing

// stateRates is the published per-square-foot installed price range for each
// material in each US jurisdiction, with the regional cost multiplier the
// ranges were derived from. Ranges already include the regional adjustment.
var stateRates = map[string]RegionRate{
	"AK": {
		Code: "AK", Name: "Alaska", Multiplier: 1.27,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 5.10, Max: 8.25},
			MaterialMetal:           {Min: 10.15, Max: 17.80},
			MaterialMembrane:        {Min: 7.45, Max: 12.90},
			MaterialCedar:           {Min: 9.50, Max: 15.90},
			MaterialTile:            {Min: 12.70, Max: 22.85},
		},
	},
	"AL": {
		Code: "AL", Name: "Alabama", Multiplier: 0.87,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 3.50, Max: 5.65},
			MaterialMetal:           {Min: 6.95, Max: 12.20},
			MaterialMembrane:        {Min: 4.80, Max: 8.25},
			MaterialCedar:           {Min: 6.50, Max: 10.90},
			MaterialTile:            {Min: 8.70, Max: 15.65},
		},
	},
	"AR": {
		Code: "AR", Name: "Arkansas", Multiplier: 0.85,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 3.40, Max: 5.50},
			MaterialMetal:           {Min: 6.80, Max: 11.90},
			MaterialMembrane:        {Min: 4.70, Max: 8.10},
			MaterialCedar:           {Min: 6.40, Max: 10.60},
			MaterialTile:            {Min: 8.50, Max: 15.30},
		},
	},
	"AZ": {
		Code: "AZ", Name: "Arizona", Multiplier: 0.98,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 3.90, Max: 6.35},
			MaterialMetal:           {Min: 7.85, Max: 13.70},
			MaterialMembrane:        {Min: 5.40, Max: 9.30},
			MaterialCedar:           {Min: 7.35, Max: 12.25},
			MaterialTile:            {Min: 8.80, Max: 15.90},
		},
	},
	"CA": {
		Code: "CA", Name: "California", Multiplier: 1.25,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 5.00, Max: 8.10},
			MaterialMetal:           {Min: 10.00, Max: 17.50},
			MaterialMembrane:        {Min: 6.90, Max: 11.90},
			MaterialCedar:           {Min: 9.40, Max: 15.60},
			MaterialTile:            {Min: 11.90, Max: 21.40},
		},
	},
	"CO": {
		Code: "CO", Name: "Colorado", Multiplier: 1.08,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 4.55, Max: 7.35},
			MaterialMetal:           {Min: 8.65, Max: 15.10},
			MaterialMembrane:        {Min: 5.95, Max: 10.25},
			MaterialCedar:           {Min: 8.10, Max: 13.50},
			MaterialTile:            {Min: 10.80, Max: 19.45},
		},
	},
	"CT": {
		Code: "CT", Name: "Connecticut", Multiplier: 1.18,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 4.70, Max: 7.65},
			MaterialMetal:           {Min: 9.45, Max: 16.50},
			MaterialMembrane:        {Min: 6.50, Max: 11.20},
			MaterialCedar:           {Min: 8.85, Max: 14.75},
			MaterialTile:            {Min: 11.80, Max: 21.25},
		},
	},
	"DC": {
		Code: "DC", Name: "District of Columbia", Multiplier: 1.24,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 4.95, Max: 8.05},
			MaterialMetal:           {Min: 9.90, Max: 17.35},
			MaterialMembrane:        {Min: 6.80, Max: 11.80},
			MaterialCedar:           {Min: 9.30, Max: 15.50},
			MaterialTile:            {Min: 12.40, Max: 22.30},
		},
	},
	"DE": {
		Code: "DE", Name: "Delaware", Multiplier: 1.05,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 4.20, Max: 6.80},
			MaterialMetal:           {Min: 8.40, Max: 14.70},
			MaterialMembrane:        {Min: 5.80, Max: 10.00},
			MaterialCedar:           {Min: 7.90, Max: 13.10},
			MaterialTile:            {Min: 10.50, Max: 18.90},
		},
	},
	"FL": {
		Code: "FL", Name: "Florida", Multiplier: 1.00,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 4.00, Max: 6.50},
			MaterialMetal:           {Min: 8.50, Max: 14.85},
			MaterialMembrane:        {Min: 5.50, Max: 9.50},
			MaterialCedar:           {Min: 7.50, Max: 12.50},
			MaterialTile:            {Min: 9.20, Max: 16.55},
		},
	},
	"GA": {
		Code: "GA", Name: "Georgia", Multiplier: 0.94,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 3.75, Max: 6.10},
			MaterialMetal:           {Min: 7.50, Max: 13.15},
			MaterialMembrane:        {Min: 5.15, Max: 8.95},
			MaterialCedar:           {Min: 7.05, Max: 11.75},
			MaterialTile:            {Min: 9.40, Max: 16.90},
		},
	},
	"HI": {
		Code: "HI", Name: "Hawaii", Multiplier: 1.30,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 5.20, Max: 8.45},
			MaterialMetal:           {Min: 11.25, Max: 19.65},
			MaterialMembrane:        {Min: 7.15, Max: 12.35},
			MaterialCedar:           {Min: 9.75, Max: 16.25},
			MaterialTile:            {Min: 13.00, Max: 23.40},
		},
	},
	"IA": {
		Code: "IA", Name: "Iowa", Multiplier: 0.92,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 3.70, Max: 6.00},
			MaterialMetal:           {Min: 7.35, Max: 12.90},
			MaterialMembrane:        {Min: 5.05, Max: 8.75},
			MaterialCedar:           {Min: 6.90, Max: 11.50},
			MaterialTile:            {Min: 9.20, Max: 16.55},
		},
	},
	"ID": {
		Code: "ID", Name: "Idaho", Multiplier: 0.95,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 3.80, Max: 6.20},
			MaterialMetal:           {Min: 7.60, Max: 13.30},
			MaterialMembrane:        {Min: 5.20, Max: 9.00},
			MaterialCedar:           {Min: 7.10, Max: 11.90},
			MaterialTile:            {Min: 9.50, Max: 17.10},
		},
	},
	"IL": {
		Code: "IL", Name: "Illinois", Multiplier: 1.07,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 4.30, Max: 6.95},
			MaterialMetal:           {Min: 8.55, Max: 15.00},
			MaterialMembrane:        {Min: 5.90, Max: 10.15},
			MaterialCedar:           {Min: 8.00, Max: 13.40},
			MaterialTile:            {Min: 10.70, Max: 19.25},
		},
	},
	"IN": {
		Code: "IN", Name: "Indiana", Multiplier: 0.91,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 3.65, Max: 5.90},
			MaterialMetal:           {Min: 7.30, Max: 12.75},
			MaterialMembrane:        {Min: 5.00, Max: 8.65},
			MaterialCedar:           {Min: 6.80, Max: 11.40},
			MaterialTile:            {Min: 9.10, Max: 16.40},
		},
	},
	"KS": {
		Code: "KS", Name: "Kansas", Multiplier: 0.90,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 3.60, Max: 5.85},
			MaterialMetal:           {Min: 7.20, Max: 12.60},
			MaterialMembrane:        {Min: 4.95, Max: 8.55},
			MaterialCedar:           {Min: 6.75, Max: 11.25},
			MaterialTile:            {Min: 9.00, Max: 16.20},
		},
	},
	"KY": {
		Code: "KY", Name: "Kentucky", Multiplier: 0.89,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 3.55, Max: 5.80},
			MaterialMetal:           {Min: 7.10, Max: 12.45},
			MaterialMembrane:        {Min: 4.90, Max: 8.45},
			MaterialCedar:           {Min: 6.70, Max: 11.10},
			MaterialTile:            {Min: 8.90, Max: 16.00},
		},
	},
	"LA": {
		Code: "LA", Name: "Louisiana", Multiplier: 0.90,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 3.60, Max: 5.85},
			MaterialMetal:           {Min: 7.50, Max: 13.10},
			MaterialMembrane:        {Min: 4.95, Max: 8.55},
			MaterialCedar:           {Min: 6.75, Max: 11.25},
			MaterialTile:            {Min: 9.00, Max: 16.20},
		},
	},
	"MA": {
		Code: "MA", Name: "Massachusetts", Multiplier: 1.22,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 4.90, Max: 7.95},
			MaterialMetal:           {Min: 9.75, Max: 17.10},
			MaterialMembrane:        {Min: 6.70, Max: 11.60},
			MaterialCedar:           {Min: 9.15, Max: 15.25},
			MaterialTile:            {Min: 12.20, Max: 21.95},
		},
	},
	"MD": {
		Code: "MD", Name: "Maryland", Multiplier: 1.10,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 4.40, Max: 7.15},
			MaterialMetal:           {Min: 8.80, Max: 15.40},
			MaterialMembrane:        {Min: 6.05, Max: 10.45},
			MaterialCedar:           {Min: 8.25, Max: 13.75},
			MaterialTile:            {Min: 11.00, Max: 19.80},
		},
	},
	"ME": {
		Code: "ME", Name: "Maine", Multiplier: 1.00,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 4.00, Max: 6.50},
			MaterialMetal:           {Min: 7.70, Max: 13.45},
			MaterialMembrane:        {Min: 5.50, Max: 9.50},
			MaterialCedar:           {Min: 7.50, Max: 12.50},
			MaterialTile:            {Min: 10.00, Max: 18.00},
		},
	},
	"MI": {
		Code: "MI", Name: "Michigan", Multiplier: 0.98,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 3.90, Max: 6.35},
			MaterialMetal:           {Min: 7.85, Max: 13.70},
			MaterialMembrane:        {Min: 5.40, Max: 9.30},
			MaterialCedar:           {Min: 7.35, Max: 12.25},
			MaterialTile:            {Min: 9.80, Max: 17.65},
		},
	},
	"MN": {
		Code: "MN", Name: "Minnesota", Multiplier: 1.05,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 4.20, Max: 6.80},
			MaterialMetal:           {Min: 8.40, Max: 14.70},
			MaterialMembrane:        {Min: 5.80, Max: 10.00},
			MaterialCedar:           {Min: 7.90, Max: 13.10},
			MaterialTile:            {Min: 10.50, Max: 18.90},
		},
	},
	"MO": {
		Code: "MO", Name: "Missouri", Multiplier: 0.91,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 3.65, Max: 5.90},
			MaterialMetal:           {Min: 7.30, Max: 12.75},
			MaterialMembrane:        {Min: 5.00, Max: 8.65},
			MaterialCedar:           {Min: 6.80, Max: 11.40},
			MaterialTile:            {Min: 9.10, Max: 16.40},
		},
	},
	"MS": {
		Code: "MS", Name: "Mississippi", Multiplier: 0.84,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 3.35, Max: 5.45},
			MaterialMetal:           {Min: 6.70, Max: 11.75},
			MaterialMembrane:        {Min: 4.60, Max: 8.00},
			MaterialCedar:           {Min: 6.30, Max: 10.50},
			MaterialTile:            {Min: 8.40, Max: 15.10},
		},
	},
	"MT": {
		Code: "MT", Name: "Montana", Multiplier: 0.97,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 3.90, Max: 6.30},
			MaterialMetal:           {Min: 7.75, Max: 13.60},
			MaterialMembrane:        {Min: 5.35, Max: 9.20},
			MaterialCedar:           {Min: 7.30, Max: 12.10},
			MaterialTile:            {Min: 9.70, Max: 17.45},
		},
	},
	"NC": {
		Code: "NC", Name: "North Carolina", Multiplier: 0.93,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 3.70, Max: 6.05},
			MaterialMetal:           {Min: 7.45, Max: 13.00},
			MaterialMembrane:        {Min: 5.10, Max: 8.85},
			MaterialCedar:           {Min: 7.00, Max: 11.60},
			MaterialTile:            {Min: 9.30, Max: 16.75},
		},
	},
	"ND": {
		Code: "ND", Name: "North Dakota", Multiplier: 0.94,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 3.75, Max: 6.10},
			MaterialMetal:           {Min: 7.50, Max: 13.15},
			MaterialMembrane:        {Min: 5.15, Max: 8.95},
			MaterialCedar:           {Min: 7.05, Max: 11.75},
			MaterialTile:            {Min: 9.40, Max: 16.90},
		},
	},
	"NE": {
		Code: "NE", Name: "Nebraska", Multiplier: 0.92,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 3.70, Max: 6.00},
			MaterialMetal:           {Min: 7.35, Max: 12.90},
			MaterialMembrane:        {Min: 5.05, Max: 8.75},
			MaterialCedar:           {Min: 6.90, Max: 11.50},
			MaterialTile:            {Min: 9.20, Max: 16.55},
		},
	},
	"NH": {
		Code: "NH", Name: "New Hampshire", Multiplier: 1.06,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 4.25, Max: 6.90},
			MaterialMetal:           {Min: 8.50, Max: 14.85},
			MaterialMembrane:        {Min: 5.85, Max: 10.05},
			MaterialCedar:           {Min: 7.95, Max: 13.25},
			MaterialTile:            {Min: 10.60, Max: 19.10},
		},
	},
	"NJ": {
		Code: "NJ", Name: "New Jersey", Multiplier: 1.20,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 4.80, Max: 7.80},
			MaterialMetal:           {Min: 9.60, Max: 16.80},
			MaterialMembrane:        {Min: 6.60, Max: 11.40},
			MaterialCedar:           {Min: 9.00, Max: 15.00},
			MaterialTile:            {Min: 12.00, Max: 21.60},
		},
	},
	"NM": {
		Code: "NM", Name: "New Mexico", Multiplier: 0.92,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 3.70, Max: 6.00},
			MaterialMetal:           {Min: 7.35, Max: 12.90},
			MaterialMembrane:        {Min: 5.05, Max: 8.75},
			MaterialCedar:           {Min: 6.90, Max: 11.50},
			MaterialTile:            {Min: 8.55, Max: 15.40},
		},
	},
	"NV": {
		Code: "NV", Name: "Nevada", Multiplier: 1.05,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 4.20, Max: 6.80},
			MaterialMetal:           {Min: 8.40, Max: 14.70},
			MaterialMembrane:        {Min: 5.80, Max: 10.00},
			MaterialCedar:           {Min: 7.90, Max: 13.10},
			MaterialTile:            {Min: 10.50, Max: 18.90},
		},
	},
	"NY": {
		Code: "NY", Name: "New York", Multiplier: 1.28,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 5.10, Max: 8.30},
			MaterialMetal:           {Min: 10.25, Max: 17.90},
			MaterialMembrane:        {Min: 7.05, Max: 12.15},
			MaterialCedar:           {Min: 9.60, Max: 16.00},
			MaterialTile:            {Min: 12.80, Max: 23.05},
		},
	},
	"OH": {
		Code: "OH", Name: "Ohio", Multiplier: 0.93,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 3.70, Max: 6.05},
			MaterialMetal:           {Min: 7.45, Max: 13.00},
			MaterialMembrane:        {Min: 5.10, Max: 8.85},
			MaterialCedar:           {Min: 7.00, Max: 11.60},
			MaterialTile:            {Min: 9.30, Max: 16.75},
		},
	},
	"OK": {
		Code: "OK", Name: "Oklahoma", Multiplier: 0.86,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 3.60, Max: 5.85},
			MaterialMetal:           {Min: 6.90, Max: 12.05},
			MaterialMembrane:        {Min: 4.75, Max: 8.15},
			MaterialCedar:           {Min: 6.45, Max: 10.75},
			MaterialTile:            {Min: 8.60, Max: 15.50},
		},
	},
	"OR": {
		Code: "OR", Name: "Oregon", Multiplier: 1.08,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 4.30, Max: 7.00},
			MaterialMetal:           {Min: 8.65, Max: 15.10},
			MaterialMembrane:        {Min: 5.95, Max: 10.25},
			MaterialCedar:           {Min: 7.30, Max: 12.15},
			MaterialTile:            {Min: 10.80, Max: 19.45},
		},
	},
	"PA": {
		Code: "PA", Name: "Pennsylvania", Multiplier: 1.02,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 4.10, Max: 6.65},
			MaterialMetal:           {Min: 8.15, Max: 14.30},
			MaterialMembrane:        {Min: 5.60, Max: 9.70},
			MaterialCedar:           {Min: 7.65, Max: 12.75},
			MaterialTile:            {Min: 10.20, Max: 18.35},
		},
	},
	"RI": {
		Code: "RI", Name: "Rhode Island", Multiplier: 1.12,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 4.50, Max: 7.30},
			MaterialMetal:           {Min: 8.95, Max: 15.70},
			MaterialMembrane:        {Min: 6.15, Max: 10.65},
			MaterialCedar:           {Min: 8.40, Max: 14.00},
			MaterialTile:            {Min: 11.20, Max: 20.15},
		},
	},
	"SC": {
		Code: "SC", Name: "South Carolina", Multiplier: 0.91,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 3.65, Max: 5.90},
			MaterialMetal:           {Min: 7.30, Max: 12.75},
			MaterialMembrane:        {Min: 5.00, Max: 8.65},
			MaterialCedar:           {Min: 6.80, Max: 11.40},
			MaterialTile:            {Min: 9.10, Max: 16.40},
		},
	},
	"SD": {
		Code: "SD", Name: "South Dakota", Multiplier: 0.90,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 3.60, Max: 5.85},
			MaterialMetal:           {Min: 7.20, Max: 12.60},
			MaterialMembrane:        {Min: 4.95, Max: 8.55},
			MaterialCedar:           {Min: 6.75, Max: 11.25},
			MaterialTile:            {Min: 9.00, Max: 16.20},
		},
	},
	"TN": {
		Code: "TN", Name: "Tennessee", Multiplier: 0.90,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 3.60, Max: 5.85},
			MaterialMetal:           {Min: 7.20, Max: 12.60},
			MaterialMembrane:        {Min: 4.95, Max: 8.55},
			MaterialCedar:           {Min: 6.75, Max: 11.25},
			MaterialTile:            {Min: 9.00, Max: 16.20},
		},
	},
	"TX": {
		Code: "TX", Name: "Texas", Multiplier: 0.95,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 3.95, Max: 6.40},
			MaterialMetal:           {Min: 7.60, Max: 13.30},
			MaterialMembrane:        {Min: 5.20, Max: 9.00},
			MaterialCedar:           {Min: 7.10, Max: 11.90},
			MaterialTile:            {Min: 9.50, Max: 17.10},
		},
	},
	"UT": {
		Code: "UT", Name: "Utah", Multiplier: 1.00,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 4.00, Max: 6.50},
			MaterialMetal:           {Min: 8.00, Max: 14.00},
			MaterialMembrane:        {Min: 5.50, Max: 9.50},
			MaterialCedar:           {Min: 7.50, Max: 12.50},
			MaterialTile:            {Min: 10.00, Max: 18.00},
		},
	},
	"VA": {
		Code: "VA", Name: "Virginia", Multiplier: 1.03,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 4.10, Max: 6.70},
			MaterialMetal:           {Min: 8.25, Max: 14.40},
			MaterialMembrane:        {Min: 5.65, Max: 9.80},
			MaterialCedar:           {Min: 7.70, Max: 12.90},
			MaterialTile:            {Min: 10.30, Max: 18.55},
		},
	},
	"VT": {
		Code: "VT", Name: "Vermont", Multiplier: 1.04,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 4.15, Max: 6.75},
			MaterialMetal:           {Min: 8.00, Max: 14.00},
			MaterialMembrane:        {Min: 5.70, Max: 9.90},
			MaterialCedar:           {Min: 7.80, Max: 13.00},
			MaterialTile:            {Min: 10.40, Max: 18.70},
		},
	},
	"WA": {
		Code: "WA", Name: "Washington", Multiplier: 1.15,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 4.60, Max: 7.50},
			MaterialMetal:           {Min: 9.20, Max: 16.10},
			MaterialMembrane:        {Min: 6.30, Max: 10.90},
			MaterialCedar:           {Min: 7.75, Max: 12.95},
			MaterialTile:            {Min: 11.50, Max: 20.70},
		},
	},
	"WI": {
		Code: "WI", Name: "Wisconsin", Multiplier: 0.97,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 3.90, Max: 6.30},
			MaterialMetal:           {Min: 7.75, Max: 13.60},
			MaterialMembrane:        {Min: 5.35, Max: 9.20},
			MaterialCedar:           {Min: 7.30, Max: 12.10},
			MaterialTile:            {Min: 9.70, Max: 17.45},
		},
	},
	"WV": {
		Code: "WV", Name: "West Virginia", Multiplier: 0.86,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 3.45, Max: 5.60},
			MaterialMetal:           {Min: 6.90, Max: 12.05},
			MaterialMembrane:        {Min: 4.75, Max: 8.15},
			MaterialCedar:           {Min: 6.45, Max: 10.75},
			MaterialTile:            {Min: 8.60, Max: 15.50},
		},
	},
	"WY": {
		Code: "WY", Name: "Wyoming", Multiplier: 0.96,
		Prices: map[Material]PriceRange{
			MaterialAsphaltShingles: {Min: 3.85, Max: 6.25},
			MaterialMetal:           {Min: 7.70, Max: 13.45},
			MaterialMembrane:        {Min: 5.30, Max: 9.10},
			MaterialCedar:           {Min: 7.20, Max: 12.00},
			MaterialTile:            {Min: 9.60, Max: 17.30},
		},
	},
}
