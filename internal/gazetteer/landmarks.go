package gazetteer

// landmarks is the built-in table: tourist spots first, then major malls.
// Order matters: Lookup returns the first keyword match.
var landmarks = []Entry{
	// Tourist spots
	{
		Keywords: []string{"bahay ni rizal in calamba", "calamba rizal", "bahay ni rizal"},
		Text:     "6578+FMH, F. Mercado St, Calamba, 4027 Laguna, Philippines",
		Street:   "F. Mercado Street", City: "Calamba", Province: "Laguna",
		ZipCode: "4027", Lat: 14.2136, Lng: 121.1667,
	},
	{
		Keywords: []string{"rizal park", "luneta"},
		Text:     "Rizal Park, Ermita, Manila, Metro Manila, Philippines",
		Street:   "Rizal Park", City: "Manila", Province: "Metro Manila",
		Lat: 14.5820, Lng: 120.9783,
	},
	{
		Keywords: []string{"intramuros", "walled city manila"},
		Text:     "General Luna Street, Intramuros, Manila, Metro Manila, Philippines",
		Street:   "General Luna Street", City: "Manila", Province: "Metro Manila",
		Lat: 14.5903, Lng: 120.9776,
	},
	{
		Keywords: []string{"fort santiago"},
		Text:     "Fort Santiago, Intramuros, Manila, Metro Manila, Philippines",
		Street:   "Fort Santiago", City: "Manila", Province: "Metro Manila",
		Lat: 14.5920, Lng: 120.9754,
	},
	{
		Keywords: []string{"national museum manila"},
		Text:     "Padre Burgos Ave, Ermita, Manila, Metro Manila, Philippines",
		Street:   "Padre Burgos Ave", City: "Manila", Province: "Metro Manila",
		Lat: 14.5873, Lng: 120.9765,
	},
	{
		Keywords: []string{"bgc", "bonifacio global city"},
		Text:     "11th Avenue, Bonifacio Global City, Taguig, 1630 Metro Manila, Philippines",
		Street:   "11th Avenue", City: "Taguig", Province: "Metro Manila",
		ZipCode: "1630", Lat: 14.5547, Lng: 121.0450,
	},
	{
		Keywords: []string{"nlsp", "nslp", "national library"},
		Text:     "T.M. Kalaw Street, Ermita, Manila, 1000 Metro Manila, Philippines",
		Street:   "T.M. Kalaw Street", City: "Manila", Province: "Metro Manila",
		ZipCode: "1000", Lat: 14.5835, Lng: 120.9810,
	},
	{
		Keywords: []string{"burnham park", "baguio burnham park"},
		Text:     "Burnham Park, Baguio City, Benguet, Philippines",
		Street:   "Burnham Park", City: "Baguio City", Province: "Benguet",
		Lat: 16.4116, Lng: 120.5950,
	},
	{
		Keywords: []string{"pagudpud beach"},
		Text:     "Pagudpud, Ilocos Norte, Philippines",
		City:     "Pagudpud", Province: "Ilocos Norte",
		Lat: 18.5639, Lng: 120.7685,
	},
	{
		Keywords: []string{"vigan", "vigan heritage town"},
		Text:     "Vigan, Ilocos Sur, Philippines",
		City:     "Vigan", Province: "Ilocos Sur",
		Lat: 17.5700, Lng: 120.3860,
	},
	{
		Keywords: []string{"hundred islands", "hundred islands national park"},
		Text:     "Alaminos, Pangasinan, Philippines",
		City:     "Alaminos", Province: "Pangasinan",
		Lat: 16.1800, Lng: 119.9800,
	},
	{
		Keywords: []string{"calaguas islands"},
		Text:     "Calaguas Islands, Vinzons, Camarines Norte, Philippines",
		City:     "Vinzons", Province: "Camarines Norte",
		Lat: 13.9000, Lng: 122.9000,
	},
	{
		Keywords: []string{"mayon volcano", "legazpi volcano"},
		Text:     "Legazpi City, Albay, Bicol Region, Philippines",
		City:     "Legazpi City", Province: "Albay",
		Lat: 13.2570, Lng: 123.6850,
	},
	{
		Keywords: []string{"cagsawa ruins"},
		Text:     "Cagsawa Ruins, Daraga, Albay, Philippines",
		City:     "Daraga", Province: "Albay",
		Lat: 13.2285, Lng: 123.6850,
	},
	{
		Keywords: []string{"taal volcano"},
		Text:     "Taal Volcano, Batangas, Philippines",
		City:     "Taal", Province: "Batangas",
		Lat: 13.0020, Lng: 120.9930,
	},
	{
		Keywords: []string{"tagaytay ridge"},
		Text:     "Tagaytay, Cavite, Philippines",
		City:     "Tagaytay", Province: "Cavite",
		Lat: 14.0960, Lng: 120.9320,
	},
	{
		Keywords: []string{"pagsanjan falls"},
		Text:     "Pagsanjan, Laguna, Philippines",
		City:     "Pagsanjan", Province: "Laguna",
		Lat: 14.3120, Lng: 121.4500,
	},
	{
		Keywords: []string{"anawangin cove"},
		Text:     "San Antonio, Zambales, Philippines",
		City:     "San Antonio", Province: "Zambales",
		Lat: 15.4110, Lng: 120.2340,
	},
	{
		Keywords: []string{"capones island"},
		Text:     "San Antonio, Zambales, Philippines",
		City:     "San Antonio", Province: "Zambales",
		Lat: 15.4360, Lng: 120.2250,
	},
	{
		Keywords: []string{"potipot island"},
		Text:     "Candelaria, Zambales, Philippines",
		City:     "Candelaria", Province: "Zambales",
		Lat: 15.7910, Lng: 119.9820,
	},
	{
		Keywords: []string{"subic bay"},
		Text:     "Subic Bay, Zambales, Philippines",
		City:     "Subic", Province: "Zambales",
		Lat: 14.8250, Lng: 120.2810,
	},
	{
		Keywords: []string{"boracay", "white beach boracay"},
		Text:     "White Beach, Malay, Aklan, Philippines",
		Street:   "White Beach", City: "Malay", Province: "Aklan",
		Lat: 11.9674, Lng: 121.9241,
	},
	{
		Keywords: []string{"panglao island"},
		Text:     "Panglao Island, Bohol, Philippines",
		City:     "Panglao", Province: "Bohol",
		Lat: 9.6025, Lng: 123.7500,
	},
	{
		Keywords: []string{"chocolate hills", "bohol hills"},
		Text:     "Carmen, Bohol, Philippines",
		City:     "Carmen", Province: "Bohol",
		Lat: 9.8266, Lng: 124.1578,
	},
	{
		Keywords: []string{"balicasag island"},
		Text:     "Balicasag Island, Panglao, Bohol, Philippines",
		City:     "Panglao", Province: "Bohol",
		Lat: 9.5930, Lng: 123.7040,
	},
	{
		Keywords: []string{"dumaluan beach"},
		Text:     "Dumaluan Beach, Panglao, Bohol, Philippines",
		Street:   "Dumaluan Beach", City: "Panglao", Province: "Bohol",
		Lat: 9.5830, Lng: 123.7480,
	},

	// Major malls
	{
		Keywords: []string{"sm moa", "sm mall of asia"},
		Text:     "Seaside Boulevard, Pasay, 1300 Metro Manila, Philippines",
		Street:   "Seaside Boulevard", City: "Pasay", Province: "Metro Manila",
		ZipCode: "1300", Lat: 14.5365, Lng: 120.9801,
	},
	{
		Keywords: []string{"sm city manila"},
		Text:     "Ermita, Manila, Metro Manila, Philippines",
		Street:   "Ermita", City: "Manila", Province: "Metro Manila",
		Lat: 14.5890, Lng: 120.9870,
	},
	{
		Keywords: []string{"sm north edsa", "sm north"},
		Text:     "North Avenue, corner Epifanio de los Santos Ave, Quezon City, 1100 Metro Manila, Philippines",
		Street:   "corner Epifanio de los Santos Avenue", City: "Quezon City", Province: "Metro Manila",
		ZipCode: "1100", Lat: 14.656808, Lng: 121.030407,
	},
	{
		Keywords: []string{"sm megamall"},
		Text:     "EDSA & Mandaluyong Road, Mandaluyong, Metro Manila, Philippines",
		Street:   "EDSA & Mandaluyong Road", City: "Mandaluyong", Province: "Metro Manila",
		Lat: 14.584447, Lng: 121.056770,
	},
	{
		Keywords: []string{"greenbelt"},
		Text:     "Greenbelt Mall, Ayala Center, Makati, Metro Manila, Philippines",
		Street:   "Makati Ave & Paseo de Roxas", City: "Makati", Province: "Metro Manila",
		Lat: 14.5520, Lng: 121.0250,
	},
	{
		Keywords: []string{"glorietta"},
		Text:     "Ayala Center, Makati, Metro Manila, Philippines",
		Street:   "Ayala Center", City: "Makati", Province: "Metro Manila",
		Lat: 14.5526, Lng: 121.0261,
	},
	{
		Keywords: []string{"trinoma"},
		Text:     "Corner EDSA & North Avenue, Quezon City, Metro Manila, Philippines",
		Street:   "EDSA & North Avenue", City: "Quezon City", Province: "Metro Manila",
		Lat: 14.6570, Lng: 121.0298,
	},
	{
		Keywords: []string{"festival mall"},
		Text:     "Alabang-Zapote Road, Alabang, Muntinlupa, Metro Manila, Philippines",
		Street:   "Alabang-Zapote Road", City: "Muntinlupa", Province: "Metro Manila",
		Lat: 14.4157, Lng: 121.0379,
	},
	{
		Keywords: []string{"shangri-la plaza mall"},
		Text:     "Shaw Boulevard, Mandaluyong, Metro Manila, Philippines",
		Street:   "Shaw Boulevard", City: "Mandaluyong", Province: "Metro Manila",
		Lat: 14.5898, Lng: 121.0591,
	},
	{
		Keywords: []string{"robinsons place manila"},
		Text:     "Ermita, Manila, Metro Manila, Philippines",
		Street:   "Ermita", City: "Manila", Province: "Metro Manila",
		Lat: 14.5890, Lng: 120.9870,
	},
	{
		Keywords: []string{"one ayala"},
		Text:     "Ayala Avenue, Makati, Metro Manila, Philippines",
		Street:   "Ayala Avenue", City: "Makati", Province: "Metro Manila",
		Lat: 14.5540, Lng: 121.0220,
	},
}
