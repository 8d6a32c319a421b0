package gazetteer

// knownPlaces provides approximate city-center coordinates. When two places
// share a name the first one listed is the default answer.
var knownPlaces = []Entry{
	// United States
	{"Seattle", "Washington", "WA", "United States", "US", 47.6062, -122.3321},
	{"Tacoma", "Washington", "WA", "United States", "US", 47.2529, -122.4443},
	{"Spokane", "Washington", "WA", "United States", "US", 47.6588, -117.4260},
	{"San Francisco", "California", "CA", "United States", "US", 37.7749, -122.4194},
	{"Los Angeles", "California", "CA", "United States", "US", 34.0522, -118.2437},
	{"San Diego", "California", "CA", "United States", "US", 32.7157, -117.1611},
	{"Sacramento", "California", "CA", "United States", "US", 38.5816, -121.4944},
	{"Portland", "Oregon", "OR", "United States", "US", 45.5152, -122.6784},
	{"Portland", "Maine", "ME", "United States", "US", 43.6591, -70.2568},
	{"Las Vegas", "Nevada", "NV", "United States", "US", 36.1699, -115.1398},
	{"Boise", "Idaho", "ID", "United States", "US", 43.6150, -116.2023},
	{"Salt Lake City", "Utah", "UT", "United States", "US", 40.7608, -111.8910},
	{"Denver", "Colorado", "CO", "United States", "US", 39.7392, -104.9903},
	{"Phoenix", "Arizona", "AZ", "United States", "US", 33.4484, -112.0740},
	{"Tucson", "Arizona", "AZ", "United States", "US", 32.2226, -110.9747},
	{"Albuquerque", "New Mexico", "NM", "United States", "US", 35.0844, -106.6504},
	{"Austin", "Texas", "TX", "United States", "US", 30.2672, -97.7431},
	{"Houston", "Texas", "TX", "United States", "US", 29.7604, -95.3698},
	{"Dallas", "Texas", "TX", "United States", "US", 32.7767, -96.7970},
	{"San Antonio", "Texas", "TX", "United States", "US", 29.4241, -98.4936},
	{"El Paso", "Texas", "TX", "United States", "US", 31.7619, -106.4850},
	{"Oklahoma City", "Oklahoma", "OK", "United States", "US", 35.4676, -97.5164},
	{"Kansas City", "Missouri", "MO", "United States", "US", 39.0997, -94.5786},
	{"St Louis", "Missouri", "MO", "United States", "US", 38.6270, -90.1994},
	{"Minneapolis", "Minnesota", "MN", "United States", "US", 44.9778, -93.2650},
	{"Chicago", "Illinois", "IL", "United States", "US", 41.8781, -87.6298},
	{"Milwaukee", "Wisconsin", "WI", "United States", "US", 43.0389, -87.9065},
	{"Nashville", "Tennessee", "TN", "United States", "US", 36.1627, -86.7816},
	{"New Orleans", "Louisiana", "LA", "United States", "US", 29.9511, -90.0715},
	{"Detroit", "Michigan", "MI", "United States", "US", 42.3314, -83.0458},
	{"Indianapolis", "Indiana", "IN", "United States", "US", 39.7684, -86.1581},
	{"Columbus", "Ohio", "OH", "United States", "US", 39.9612, -82.9988},
	{"Cleveland", "Ohio", "OH", "United States", "US", 41.4993, -81.6944},
	{"Pittsburgh", "Pennsylvania", "PA", "United States", "US", 40.4406, -79.9959},
	{"Philadelphia", "Pennsylvania", "PA", "United States", "US", 39.9526, -75.1652},
	{"New York", "New York", "NY", "United States", "US", 40.7128, -74.0060},
	{"NYC", "New York", "NY", "United States", "US", 40.7128, -74.0060},
	{"Brooklyn", "New York", "NY", "United States", "US", 40.6782, -73.9442},
	{"Boston", "Massachusetts", "MA", "United States", "US", 42.3601, -71.0589},
	{"Washington", "District of Columbia", "DC", "United States", "US", 38.9072, -77.0369},
	{"Baltimore", "Maryland", "MD", "United States", "US", 39.2904, -76.6122},
	{"Miami", "Florida", "FL", "United States", "US", 25.7617, -80.1918},
	{"Orlando", "Florida", "FL", "United States", "US", 28.5383, -81.3792},
	{"Atlanta", "Georgia", "GA", "United States", "US", 33.7490, -84.3880},
	{"Raleigh", "North Carolina", "NC", "United States", "US", 35.7796, -78.6382},
	{"Durham", "North Carolina", "NC", "United States", "US", 35.9940, -78.8986},
	{"Charlotte", "North Carolina", "NC", "United States", "US", 35.2271, -80.8431},
	{"Anchorage", "Alaska", "AK", "United States", "US", 61.2181, -149.9003},
	{"Honolulu", "Hawaii", "HI", "United States", "US", 21.3069, -157.8583},

	// Canada and Mexico
	{"Vancouver", "British Columbia", "BC", "Canada", "CA", 49.2827, -123.1207},
	{"Calgary", "Alberta", "AB", "Canada", "CA", 51.0447, -114.0719},
	{"Edmonton", "Alberta", "AB", "Canada", "CA", 53.5461, -113.4938},
	{"Winnipeg", "Manitoba", "MB", "Canada", "CA", 49.8951, -97.1384},
	{"Toronto", "Ontario", "ON", "Canada", "CA", 43.6532, -79.3832},
	{"Ottawa", "Ontario", "ON", "Canada", "CA", 45.4215, -75.6972},
	{"Montreal", "Quebec", "QC", "Canada", "CA", 45.5017, -73.5673},
	{"Halifax", "Nova Scotia", "NS", "Canada", "CA", 44.6488, -63.5752},
	{"Mexico City", "Mexico City", "CDMX", "Mexico", "MX", 19.4326, -99.1332},
	{"Guadalajara", "Jalisco", "JAL", "Mexico", "MX", 20.6597, -103.3496},

	// Europe
	{"London", "England", "ENG", "United Kingdom", "GB", 51.5074, -0.1278},
	{"Manchester", "England", "ENG", "United Kingdom", "GB", 53.4808, -2.2426},
	{"Edinburgh", "Scotland", "SCT", "United Kingdom", "GB", 55.9533, -3.1883},
	{"Dublin", "Leinster", "L", "Ireland", "IE", 53.3498, -6.2603},
	{"Paris", "Ile-de-France", "IDF", "France", "FR", 48.8566, 2.3522},
	{"Lyon", "Auvergne-Rhone-Alpes", "ARA", "France", "FR", 45.7640, 4.8357},
	{"Berlin", "Berlin", "BE", "Germany", "DE", 52.5200, 13.4050},
	{"Munich", "Bavaria", "BY", "Germany", "DE", 48.1351, 11.5820},
	{"Hamburg", "Hamburg", "HH", "Germany", "DE", 53.5511, 9.9937},
	{"Amsterdam", "North Holland", "NH", "Netherlands", "NL", 52.3676, 4.9041},
	{"Brussels", "Brussels", "BRU", "Belgium", "BE", 50.8503, 4.3517},
	{"Barcelona", "Catalonia", "CT", "Spain", "ES", 41.3851, 2.1734},
	{"Madrid", "Madrid", "MD", "Spain", "ES", 40.4168, -3.7038},
	{"Lisbon", "Lisbon", "11", "Portugal", "PT", 38.7223, -9.1393},
	{"Porto", "Porto", "13", "Portugal", "PT", 41.1579, -8.6291},
	{"Rome", "Lazio", "62", "Italy", "IT", 41.9028, 12.4964},
	{"Milan", "Lombardy", "25", "Italy", "IT", 45.4642, 9.1900},
	{"Zurich", "Zurich", "ZH", "Switzerland", "CH", 47.3769, 8.5417},
	{"Geneva", "Geneva", "GE", "Switzerland", "CH", 46.2044, 6.1432},
	{"Vienna", "Vienna", "9", "Austria", "AT", 48.2082, 16.3738},
	{"Prague", "Prague", "10", "Czechia", "CZ", 50.0755, 14.4378},
	{"Warsaw", "Masovia", "14", "Poland", "PL", 52.2297, 21.0122},
	{"Copenhagen", "Capital Region", "84", "Denmark", "DK", 55.6761, 12.5683},
	{"Stockholm", "Stockholm", "AB", "Sweden", "SE", 59.3293, 18.0686},
	{"Oslo", "Oslo", "03", "Norway", "NO", 59.9139, 10.7522},
	{"Helsinki", "Uusimaa", "18", "Finland", "FI", 60.1699, 24.9384},
	{"Reykjavik", "Capital Region", "1", "Iceland", "IS", 64.1466, -21.9426},
	{"Athens", "Attica", "I", "Greece", "GR", 37.9838, 23.7275},
	{"Istanbul", "Istanbul", "34", "Turkey", "TR", 41.0082, 28.9784},
	{"Kyiv", "Kyiv", "30", "Ukraine", "UA", 50.4501, 30.5234},
	{"Moscow", "Moscow", "MOW", "Russia", "RU", 55.7558, 37.6173},

	// Africa and the Middle East
	{"Cairo", "Cairo", "C", "Egypt", "EG", 30.0444, 31.2357},
	{"Lagos", "Lagos", "LA", "Nigeria", "NG", 6.5244, 3.3792},
	{"Nairobi", "Nairobi", "30", "Kenya", "KE", -1.2921, 36.8219},
	{"Johannesburg", "Gauteng", "GP", "South Africa", "ZA", -26.2041, 28.0473},
	{"Cape Town", "Western Cape", "WC", "South Africa", "ZA", -33.9249, 18.4241},
	{"Tel Aviv", "Tel Aviv", "TA", "Israel", "IL", 32.0853, 34.7818},
	{"Dubai", "Dubai", "DU", "United Arab Emirates", "AE", 25.2048, 55.2708},
	{"Riyadh", "Riyadh", "01", "Saudi Arabia", "SA", 24.7136, 46.6753},
	{"Tehran", "Tehran", "07", "Iran", "IR", 35.6892, 51.3890},

	// Asia
	{"Karachi", "Sindh", "SD", "Pakistan", "PK", 24.8607, 67.0011},
	{"Delhi", "Delhi", "DL", "India", "IN", 28.7041, 77.1025},
	{"Mumbai", "Maharashtra", "MH", "India", "IN", 19.0760, 72.8777},
	{"Bangalore", "Karnataka", "KA", "India", "IN", 12.9716, 77.5946},
	{"Bengaluru", "Karnataka", "KA", "India", "IN", 12.9716, 77.5946},
	{"Kathmandu", "Bagmati", "P3", "Nepal", "NP", 27.7172, 85.3240},
	{"Dhaka", "Dhaka", "C", "Bangladesh", "BD", 23.8103, 90.4125},
	{"Bangkok", "Bangkok", "10", "Thailand", "TH", 13.7563, 100.5018},
	{"Hanoi", "Hanoi", "HN", "Vietnam", "VN", 21.0278, 105.8342},
	{"Singapore", "Singapore", "SG", "Singapore", "SG", 1.3521, 103.8198},
	{"Jakarta", "Jakarta", "JK", "Indonesia", "ID", -6.2088, 106.8456},
	{"Manila", "Metro Manila", "NCR", "Philippines", "PH", 14.5995, 120.9842},
	{"Hong Kong", "Hong Kong", "HK", "China", "CN", 22.3193, 114.1694},
	{"Shanghai", "Shanghai", "SH", "China", "CN", 31.2304, 121.4737},
	{"Beijing", "Beijing", "BJ", "China", "CN", 39.9042, 116.4074},
	{"Taipei", "Taipei", "TPE", "Taiwan", "TW", 25.0330, 121.5654},
	{"Seoul", "Seoul", "11", "South Korea", "KR", 37.5665, 126.9780},
	{"Tokyo", "Tokyo", "13", "Japan", "JP", 35.6762, 139.6503},
	{"Osaka", "Osaka", "27", "Japan", "JP", 34.6937, 135.5023},

	// Oceania
	{"Perth", "Western Australia", "WA", "Australia", "AU", -31.9523, 115.8613},
	{"Adelaide", "South Australia", "SA", "Australia", "AU", -34.9285, 138.6007},
	{"Darwin", "Northern Territory", "NT", "Australia", "AU", -12.4634, 130.8456},
	{"Brisbane", "Queensland", "QLD", "Australia", "AU", -27.4698, 153.0251},
	{"Sydney", "New South Wales", "NSW", "Australia", "AU", -33.8688, 151.2093},
	{"Melbourne", "Victoria", "VIC", "Australia", "AU", -37.8136, 144.9631},
	{"Auckland", "Auckland", "AUK", "New Zealand", "NZ", -36.8485, 174.7633},
	{"Wellington", "Wellington", "WGN", "New Zealand", "NZ", -41.2865, 174.7762},

	// South America
	{"Sao Paulo", "Sao Paulo", "SP", "Brazil", "BR", -23.5505, -46.6333},
	{"Rio de Janeiro", "Rio de Janeiro", "RJ", "Brazil", "BR", -22.9068, -43.1729},
	{"Buenos Aires", "Buenos Aires", "C", "Argentina", "AR", -34.6037, -58.3816},
	{"Santiago", "Santiago Metropolitan", "RM", "Chile", "CL", -33.4489, -70.6693},
	{"Lima", "Lima", "LIM", "Peru", "PE", -12.0464, -77.0428},
	{"Bogota", "Bogota", "DC", "Colombia", "CO", 4.7110, -74.0721},
	{"Caracas", "Capital District", "A", "Venezuela", "VE", 10.4806, -66.9036},

	// Namesakes of better known places
	{"Paris", "Texas", "TX", "United States", "US", 33.6609, -95.5555},
	{"London", "Ontario", "ON", "Canada", "CA", 42.9849, -81.2453},
	{"Perth", "Scotland", "SCT", "United Kingdom", "GB", 56.3950, -3.4308},
}

// countryAliases maps common spoken country names to ISO codes.
var countryAliases = map[string]string{
	"usa":                      "US",
	"u.s.":                     "US",
	"u.s.a.":                   "US",
	"united states of america": "US",
	"the united states":        "US",
	"uk":                       "GB",
	"britain":                  "GB",
	"great britain":            "GB",
	"england":                  "GB",
	"holland":                  "NL",
	"korea":                    "KR",
	"czech republic":           "CZ",
	"uae":                      "AE",
}
