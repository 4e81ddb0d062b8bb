package areas

// karachiAreas 卡拉奇区域与街区列表（按首字母分组）
var karachiAreas = []Area{
	{
		Name:   "Abbas Town",
		Blocks: []string{"Sector 1", "Sector 2", "Sector 3", "Sector 4"},
	},
	{
		Name:   "Abyssinia Lines",
		Blocks: []string{"Main Abyssinia Lines", "Napier Road"},
	},
	{
		Name:   "Akhtar Colony",
		Blocks: []string{"Block A", "Block B", "Block C", "Block D"},
	},
	{
		Name:   "Al-Asif Square",
		Blocks: []string{"Main Al-Asif Square", "Korangi Road"},
	},
	{
		Name:   "Ancholi",
		Blocks: []string{"Main Ancholi", "Nazimabad No. 3", "Hyderi"},
	},
	{
		Name:   "Aisha Manzil",
		Blocks: []string{"Main Aisha Manzil", "Korangi Road"},
	},
	{
		Name:   "Askari",
		Blocks: []string{"Askari 1", "Askari 2", "Askari 3", "Askari 4", "Askari 5", "Askari 6", "Askari 7", "Askari 8", "Askari 9", "Askari 10", "Askari 11", "Askari 12", "Askari 13", "Askari 14"},
	},
	{
		Name:   "Awami Colony",
		Blocks: []string{"Sector 1", "Sector 2", "Sector 3", "Sector 4"},
	},
	{
		Name:   "Azam Basti",
		Blocks: []string{"Main Azam Basti", "Jamshed Road"},
	},
	{
		Name:   "Azizabad",
		Blocks: []string{"Main Azizabad", "F.B. Area"},
	},
	{
		Name:   "Bahadurabad",
		Blocks: []string{"Bahadurabad Main", "Sharifabad", "Overseas Colony"},
	},
	{
		Name:   "Bahria Town",
		Blocks: []string{"Precinct 1", "Precinct 2", "Precinct 3", "Precinct 4", "Precinct 5", "Precinct 6", "Precinct 7", "Precinct 8", "Precinct 9", "Precinct 10", "Precinct 11", "Precinct 12", "Precinct 13", "Precinct 14", "Precinct 15", "Precinct 16", "Precinct 17", "Precinct 18", "Precinct 19", "Precinct 20", "Precinct 21", "Precinct 22", "Precinct 23", "Precinct 24", "Precinct 25", "Precinct 26", "Precinct 27"},
	},
	{
		Name:   "Baldia Town",
		Blocks: []string{"Sector 1", "Sector 2", "Sector 3", "Sector 4", "Ittehad Town", "Rasheedabad", "Saeedabad"},
	},
	{
		Name:   "Baloch Colony",
		Blocks: []string{"Main Baloch Colony", "Korangi"},
	},
	{
		Name:   "Banaras",
		Blocks: []string{"Main Banaras", "Jamshed Quarters"},
	},
	{
		Name:   "Bath Island",
		Blocks: []string{"Main Bath Island", "Clifton"},
	},
	{
		Name:   "Buffer Zone",
		Blocks: []string{"Sector 1", "Sector 2", "Sector 3", "Sector 4", "Sector 5", "Sector 6"},
	},
	{
		Name:   "Burns Road",
		Blocks: []string{"Main Burns Road", "Saddar"},
	},
	{
		Name:   "Cantonment",
		Blocks: []string{"Cantt Station", "Jinnah Avenue", "Mall Road", "Bunder Road", "Frere Road"},
	},
	{
		Name:   "Chakiwara",
		Blocks: []string{"Main Chakiwara", "Lyari"},
	},
	{
		Name:   "Chanesar Goth",
		Blocks: []string{"Main Chanesar Goth", "Super Highway"},
	},
	{
		Name:   "Civic Centre",
		Blocks: []string{"Main Civic Centre", "Gulistan-e-Jauhar"},
	},
	{
		Name:   "Clifton",
		Blocks: []string{"Block 1", "Block 2", "Block 3", "Block 4", "Block 5", "Block 6", "Block 7", "Block 8", "Block 9"},
	},
	{
		Name:   "Darakhshan",
		Blocks: []string{"Main Darakhshan", "DHA Phase 7"},
	},
	{
		Name:   "Defence (DHA)",
		Blocks: []string{"Phase 1", "Phase 2", "Phase 2 Ext", "Phase 3", "Phase 4", "Phase 5", "Phase 6", "Phase 7", "Phase 8", "DHA Creek"},
	},
	{
		Name:   "Delhi Colony",
		Blocks: []string{"Main Delhi Colony", "SITE Area"},
	},
	{
		Name:   "Dhobi Ghat",
		Blocks: []string{"Main Dhobi Ghat", "SITE Area"},
	},
	{
		Name:   "Drigh Colony",
		Blocks: []string{"Main Drigh Colony", "Drigh Road"},
	},
	{
		Name:   "Drigh Road",
		Blocks: []string{"Main Drigh Road", "Shahrah-e-Faisal"},
	},
	{
		Name:   "Empress Market",
		Blocks: []string{"Main Empress Market", "Saddar"},
	},
	{
		Name:   "Faisal Cantonment",
		Blocks: []string{"Sector 1", "Sector 2", "Sector 3", "Sector 4", "Sector 5"},
	},
	{
		Name:   "Federal B Area",
		Blocks: []string{"Block 1", "Block 2", "Block 3", "Block 4", "Block 5", "Block 6", "Block 7", "Block 8", "Block 9", "Block 10", "Block 11", "Block 12", "Block 13", "Block 14", "Block 15", "Block 16", "Block 17", "Block 18", "Block 19", "Block 20"},
	},
	{
		Name:   "Ferozabad",
		Blocks: []string{"Main Ferozabad", "Jamshed Quarters"},
	},
	{
		Name:   "Frere Town",
		Blocks: []string{"Main Frere Town", "Saddar"},
	},
	{
		Name:   "Garden",
		Blocks: []string{"Garden East", "Garden West", "Stadium Road", "Kashmir Road"},
	},
	{
		Name:   "Gharibabad",
		Blocks: []string{"Main Gharibabad", "Orangi Town"},
	},
	{
		Name:   "Golimar",
		Blocks: []string{"Main Golimar", "Nazimabad"},
	},
	{
		Name:   "Godhra",
		Blocks: []string{"Godhra Camp", "Lyari"},
	},
	{
		Name:   "Grex",
		Blocks: []string{"Main Grex", "Nazimabad"},
	},
	{
		Name:   "Gulberg",
		Blocks: []string{"Block 1", "Block 2", "Block 3", "Block 4", "Block 5", "Block 6", "Block 7", "Block 8", "Block 9", "Block 10", "Block 11", "Block 12", "Block 13", "Block 14", "Block 15"},
	},
	{
		Name:   "Gulistan-e-Jauhar",
		Blocks: []string{"Block 1", "Block 2", "Block 3", "Block 4", "Block 5", "Block 6", "Block 7", "Block 8", "Block 9", "Block 10", "Block 11", "Block 12", "Block 13", "Block 14", "Block 15", "Block 16", "Block 17", "Block 18", "Block 19"},
	},
	{
		Name:   "Gulshan-e-Hadeed",
		Blocks: []string{"Phase 1", "Phase 2", "Phase 3"},
	},
	{
		Name:   "Gulshan-e-Iqbal",
		Blocks: []string{"Block 1", "Block 2", "Block 3", "Block 4", "Block 5", "Block 6", "Block 7", "Block 8", "Block 9", "Block 10", "Block 11", "Block 12", "Block 13", "Block 13-A", "Block 13-B", "Block 13-C", "Block 13-D", "Block 14", "Block 15", "Block 16", "Block 17", "Block 18", "Block 19"},
	},
	{
		Name:   "Gulshan-e-Maymar",
		Blocks: []string{"Sector 1", "Sector 2", "Sector 3", "Sector 4"},
	},
	{
		Name:   "Gulzar-e-Hijri",
		Blocks: []string{"Sector 1", "Sector 2", "Sector 3", "Sector 4", "Sector 5", "Sector 6", "Sector 7", "Sector 8"},
	},
	{
		Name:   "Haidery",
		Blocks: []string{"Main Haidery", "Karsaz"},
	},
	{
		Name:   "Haroonabad",
		Blocks: []string{"Main Haroonabad", "Korangi"},
	},
	{
		Name:   "Hassan Square",
		Blocks: []string{"Main Hassan Square", "Gulshan-e-Iqbal"},
	},
	{
		Name:   "Hawksbay",
		Blocks: []string{"Main Hawksbay", "Beach Area"},
	},
	{
		Name:   "Hill Park",
		Blocks: []string{"Main Hill Park", "Mehmoodabad"},
	},
	{
		Name:   "Hyderi",
		Blocks: []string{"Main Hyderi", "Nazimabad"},
	},
	{
		Name:   "Ibrahim Hyderi",
		Blocks: []string{"Main Ibrahim Hyderi", "Korangi Creek"},
	},
	{
		Name:   "Ittehad Town",
		Blocks: []string{"Main Ittehad Town", "Baldia"},
	},
	{
		Name:   "Jamshed Town",
		Blocks: []string{"Jamshed Quarters", "Soldier Bazaar", "Garden West", "Garden East", "Azam Basti"},
	},
	{
		Name:   "Jauhar Chowrangi",
		Blocks: []string{"Main Jauhar Chowrangi", "Gulistan-e-Jauhar"},
	},
	{
		Name:   "Johar Morr",
		Blocks: []string{"Main Johar Morr", "Gulistan-e-Jauhar"},
	},
	{
		Name:   "Karimabad",
		Blocks: []string{"Main Karimabad", "Federal B Area"},
	},
	{
		Name:   "Karsaz",
		Blocks: []string{"Main Karsaz", "Shahrah-e-Faisal"},
	},
	{
		Name:   "Karachi Cantonment",
		Blocks: []string{"Mall Road", "Jinnah Avenue", "Cantt Station"},
	},
	{
		Name:   "Kashmir Road",
		Blocks: []string{"Main Kashmir Road", "Garden"},
	},
	{
		Name:   "Keamari (Kemari)",
		Blocks: []string{"Kemari Town", "Maripur", "West Wharf", "Keamari Sector"},
	},
	{
		Name:   "Kharadar",
		Blocks: []string{"Main Kharadar", "Saddar"},
	},
	{
		Name:   "Khayaban-e-Badar",
		Blocks: []string{"Main Khayaban-e-Badar", "DHA Phase 6"},
	},
	{
		Name:   "Khayaban-e-Bukhari",
		Blocks: []string{"Main Khayaban-e-Bukhari", "DHA Phase 6"},
	},
	{
		Name:   "Khayaban-e-Shahbaz",
		Blocks: []string{"Main Khayaban-e-Shahbaz", "DHA Phase 6"},
	},
	{
		Name:   "Khayaban-e-Ittehad",
		Blocks: []string{"Main Khayaban-e-Ittehad", "DHA Phase 6"},
	},
	{
		Name:   "Khayaban-e-Jami",
		Blocks: []string{"Main Khayaban-e-Jami", "DHA Phase 7"},
	},
	{
		Name:   "Khayaban-e-Mujahid",
		Blocks: []string{"Main Khayaban-e-Mujahid", "DHA Phase 5"},
	},
	{
		Name:   "Khayaban-e-Roomi",
		Blocks: []string{"Main Khayaban-e-Roomi", "DHA Phase 5"},
	},
	{
		Name:   "Khayaban-e-Seher",
		Blocks: []string{"Main Khayaban-e-Seher", "DHA Phase 7"},
	},
	{
		Name:   "Khayaban-e-Shamsheer",
		Blocks: []string{"Main Khayaban-e-Shamsheer", "DHA Phase 5"},
	},
	{
		Name:   "Khayaban-e-Tanzeem",
		Blocks: []string{"Main Khayaban-e-Tanzeem", "DHA Phase 5"},
	},
	{
		Name:   "Korangi",
		Blocks: []string{"Korangi 1", "Korangi 1.5", "Korangi 2", "Korangi 2.5", "Korangi 3", "Korangi 3.5", "Korangi 4", "Korangi 5", "Korangi 6", "Sector 31", "Sector 32", "Sector 33", "Sector 35"},
	},
	{
		Name:   "Korangi Creek",
		Blocks: []string{"Main Korangi Creek", "Ibrahim Hyderi"},
	},
	{
		Name:   "Korangi Industrial Area",
		Blocks: []string{"Sector 1", "Sector 2", "Sector 3", "Sector 4", "Sector 5"},
	},
	{
		Name:   "Lalukhet",
		Blocks: []string{"Main Lalukhet", "North Nazimabad"},
	},
	{
		Name:   "Landhi",
		Blocks: []string{"Landhi 1", "Landhi 2", "Landhi 3", "Landhi 4", "Landhi 5", "Landhi 6", "Quaidabad"},
	},
	{
		Name:   "Lasbela",
		Blocks: []string{"Main Lasbela", "Malir"},
	},
	{
		Name:   "Lea Market",
		Blocks: []string{"Main Lea Market", "Saddar"},
	},
	{
		Name:   "Lines Area",
		Blocks: []string{"Soldier Bazaar Lines", "Preedy Lines", "Aram Bagh Lines"},
	},
	{
		Name:   "Liaquatabad",
		Blocks: []string{"Block 1", "Block 2", "Block 3", "Block 4", "Block 5", "Block 6", "Block 7", "Block 8", "Block 9", "Block 10"},
	},
	{
		Name:   "Lyari",
		Blocks: []string{"Old Lyari", "New Lyari", "Chakiwara", "Godhra", "Baghdadi", "Hingorabad"},
	},
	{
		Name:   "Macchar Colony",
		Blocks: []string{"Main Macchar Colony", "Keamari"},
	},
	{
		Name:   "Mahmoodabad",
		Blocks: []string{"Block 1", "Block 2", "Block 3", "Block 4", "Block 5"},
	},
	{
		Name:   "Malir",
		Blocks: []string{"Malir City", "Malir Halt", "Malir Cantt", "Saudabad", "Model Colony", "Khokrapar", "Bakhtawar Colony"},
	},
	{
		Name:   "Malir Cantonment",
		Blocks: []string{"Sector 1", "Sector 2", "Sector 3", "Sector 4", "Sector 5", "Sector 6"},
	},
	{
		Name:   "Manghopir",
		Blocks: []string{"Main Manghopir", "Super Highway"},
	},
	{
		Name:   "Manora",
		Blocks: []string{"Main Manora", "Island"},
	},
	{
		Name:   "Maripur",
		Blocks: []string{"Main Maripur", "Keamari"},
	},
	{
		Name:   "Mauripur",
		Blocks: []string{"Main Mauripur", "Airport Area"},
	},
	{
		Name:   "Mehmoodabad",
		Blocks: []string{"Block 1", "Block 2", "Block 3", "Block 4", "Block 5", "Block 6"},
	},
	{
		Name:   "Memon Goth",
		Blocks: []string{"Main Memon Goth", "Malir"},
	},
	{
		Name:   "Metroville",
		Blocks: []string{"Sector 1", "Sector 2", "Sector 3"},
	},
	{
		Name:   "Military Cantt",
		Blocks: []string{"Main Military Cantt", "Malir"},
	},
	{
		Name:   "Miran Naka",
		Blocks: []string{"Main Miran Naka", "Orangi"},
	},
	{
		Name:   "Mithadar",
		Blocks: []string{"Main Mithadar", "Saddar"},
	},
	{
		Name:   "Mominabad",
		Blocks: []string{"Main Mominabad", "Orangi Town"},
	},
	{
		Name:   "Mosmiyat",
		Blocks: []string{"Main Mosmiyat", "Keamari"},
	},
	{
		Name:   "Nagan Chowrangi",
		Blocks: []string{"Main Nagan Chowrangi", "North Nazimabad"},
	},
	{
		Name:   "Napier",
		Blocks: []string{"Main Napier", "Saddar"},
	},
	{
		Name:   "Nazimabad",
		Blocks: []string{"Block 1", "Block 2", "Block 3", "Block 4", "Block 5", "Block A", "Block B", "Block C", "Block D", "Block E", "Block F", "Block G", "Block H", "Block I", "Block J", "Block K", "Block L"},
	},
	{
		Name:   "New Karachi",
		Blocks: []string{"Sector 5-A", "Sector 5-B", "Sector 5-C", "Sector 5-D", "Sector 7-D", "Sector 11-A", "Sector 11-B", "Sector 11-C", "Sector 11-D", "Sector 11-E", "Sector 11-F", "Sector 11-L"},
	},
	{
		Name:   "New Town",
		Blocks: []string{"Main New Town", "Tariq Road"},
	},
	{
		Name:   "Nipa",
		Blocks: []string{"Main Nipa", "University Road"},
	},
	{
		Name:   "Nizamuddin",
		Blocks: []string{"Main Nizamuddin", "Korangi"},
	},
	{
		Name:   "North Karachi",
		Blocks: []string{"Sector 5-A", "Sector 5-B", "Sector 5-C", "Sector 5-D", "Sector 7-D", "Sector 11-A", "Sector 11-B", "Sector 11-C", "Sector 11-D", "Sector 11-E", "Sector 11-F", "Sector 11-L"},
	},
	{
		Name:   "North Nazimabad",
		Blocks: []string{"Block A", "Block B", "Block C", "Block D", "Block E", "Block F", "Block G", "Block H", "Block I", "Block J", "Block K", "Block L", "Block M", "Block N"},
	},
	{
		Name:   "Old City Area",
		Blocks: []string{"Main Old City", "Kharadar", "Mithadar"},
	},
	{
		Name:   "Orangi Town",
		Blocks: []string{"Sector 1", "Sector 2", "Sector 3", "Sector 4", "Sector 5", "Sector 6", "Sector 7", "Sector 8", "Sector 9", "Sector 10", "Sector 11", "Sector 12", "Sector 13", "Sector 14", "Sector 15", "Sector 16"},
	},
	{
		Name:   "Overseas Colony",
		Blocks: []string{"Main Overseas Colony", "Bahadurabad"},
	},
	{
		Name:   "Pakistan Chowk",
		Blocks: []string{"Main Pakistan Chowk", "Saddar"},
	},
	{
		Name:   "Paper Market",
		Blocks: []string{"Main Paper Market", "Saddar"},
	},
	{
		Name:   "Paposh Nagar",
		Blocks: []string{"Main Paposh Nagar", "North Nazimabad"},
	},
	{
		Name:   "Paradise",
		Blocks: []string{"Main Paradise", "Bahadurabad"},
	},
	{
		Name:   "PECHS",
		Blocks: []string{"Block 1", "Block 2", "Block 3", "Block 4", "Block 5", "Block 6"},
	},
	{
		Name:   "PIB Colony",
		Blocks: []string{"Main PIB Colony", "Karachi Cantt"},
	},
	{
		Name:   "Parsi Colony",
		Blocks: []string{"Main Parsi Colony", "Saddar"},
	},
	{
		Name:   "Preedy Quarters",
		Blocks: []string{"Main Preedy Quarters", "Saddar"},
	},
	{
		Name:   "Qasba Colony",
		Blocks: []string{"Main Qasba Colony", "Orangi"},
	},
	{
		Name:   "Qayyumabad",
		Blocks: []string{"Sector 1", "Sector 2", "Sector 3", "Sector 4"},
	},
	{
		Name:   "Quaidabad",
		Blocks: []string{"Main Quaidabad", "Landhi"},
	},
	{
		Name:   "Quaid-e-Azam Colony",
		Blocks: []string{"Block A", "Block B", "Block C"},
	},
	{
		Name:   "Ranchor Line",
		Blocks: []string{"Main Ranchor Line", "Lyari"},
	},
	{
		Name:   "Ranchore Lines",
		Blocks: []string{"Main Ranchore Lines", "Old City"},
	},
	{
		Name:   "Rasheedabad",
		Blocks: []string{"Main Rasheedabad", "Baldia"},
	},
	{
		Name:   "Railway Colony",
		Blocks: []string{"Main Railway Colony", "Cantt"},
	},
	{
		Name:   "Rizvia",
		Blocks: []string{"Main Rizvia", "Nazimabad"},
	},
	{
		Name:   "Sadar (Saddar)",
		Blocks: []string{"Saddar Town", "Empress Market", "Kharadar", "Mithadar", "Garden"},
	},
	{
		Name:   "Saeedabad",
		Blocks: []string{"Main Saeedabad", "Baldia"},
	},
	{
		Name:   "Safora Goth",
		Blocks: []string{"Main Safora Goth", "Super Highway"},
	},
	{
		Name:   "Sakhi Hassan",
		Blocks: []string{"Main Sakhi Hassan", "Gulshan-e-Iqbal"},
	},
	{
		Name:   "Saudabad",
		Blocks: []string{"Main Saudabad", "Malir"},
	},
	{
		Name:   "Scheme 33",
		Blocks: []string{"Sector A", "Sector B", "Sector C", "Sector D", "Sector E", "Sector F"},
	},
	{
		Name:   "Sea View",
		Blocks: []string{"Main Sea View", "Clifton"},
	},
	{
		Name:   "Shaheed-e-Millat Road",
		Blocks: []string{"Main Shaheed-e-Millat", "Korangi"},
	},
	{
		Name:   "Shah Faisal Colony",
		Blocks: []string{"Block 1", "Block 2", "Block 3", "Block 4", "Block 5", "Block 6", "Block 7", "Block 8"},
	},
	{
		Name:   "Shahra-e-Faisal",
		Blocks: []string{"Main Shahrah-e-Faisal", "Tipu Sultan Road", "Drigh Road"},
	},
	{
		Name:   "Shahra-e-Pakistan",
		Blocks: []string{"Main Shahrah-e-Pakistan", "Clifton"},
	},
	{
		Name:   "Shahra-e-Quaideen",
		Blocks: []string{"Main Shahrah-e-Quaideen", "PECHS"},
	},
	{
		Name:   "Shamsi Society",
		Blocks: []string{"Main Shamsi Society", "Clifton"},
	},
	{
		Name:   "Shershah",
		Blocks: []string{"Main Shershah", "SITE Area"},
	},
	{
		Name:   "Sherpao Colony",
		Blocks: []string{"Main Sherpao Colony", "SITE"},
	},
	{
		Name:   "Sher Shah",
		Blocks: []string{"Main Sher Shah", "SITE"},
	},
	{
		Name:   "Sifoora Goth",
		Blocks: []string{"Main Sifoora Goth", "Gulshan-e-Maymar"},
	},
	{
		Name:   "Site Area",
		Blocks: []string{"SITE Main", "Industrial Area", "Metroville", "Manghopir Road"},
	},
	{
		Name:   "Sohrab Goth",
		Blocks: []string{"Main Sohrab Goth", "Super Highway"},
	},
	{
		Name:   "Soldier Bazaar",
		Blocks: []string{"Block 1", "Block 2", "Block 3"},
	},
	{
		Name:   "Surjani Town",
		Blocks: []string{"Sector 1", "Sector 2", "Sector 3", "Sector 4", "Sector 5", "Sector 6", "Sector 7", "Sector 8"},
	},
	{
		Name:   "Tariq Road",
		Blocks: []string{"Main Tariq Road", "New Town", "SMCHS"},
	},
	{
		Name:   "Tipu Sultan",
		Blocks: []string{"Main Tipu Sultan", "Shahrah-e-Faisal"},
	},
	{
		Name:   "Timber Market",
		Blocks: []string{"Main Timber Market", "SITE"},
	},
	{
		Name:   "Taimuria",
		Blocks: []string{"Main Taimuria", "Federal B Area"},
	},
	{
		Name:   "Teen Hatti",
		Blocks: []string{"Main Teen Hatti", "Lyari"},
	},
	{
		Name:   "Tower",
		Blocks: []string{"Main Tower", "Saddar"},
	},
	{
		Name:   "Umer Colony",
		Blocks: []string{"Main Umer Colony", "Korangi"},
	},
	{
		Name:   "University Road",
		Blocks: []string{"Main University Road", "Gulshan", "Samama"},
	},
	{
		Name:   "Veterinary Colony",
		Blocks: []string{"Main Veterinary Colony", "Gulshan"},
	},
	{
		Name:   "Villaggio",
		Blocks: []string{"Main Villaggio", "Clifton"},
	},
	{
		Name:   "Water Pump",
		Blocks: []string{"Main Water Pump", "Clifton"},
	},
	{
		Name:   "Wireless Gate",
		Blocks: []string{"Main Wireless Gate", "Clifton"},
	},
	{
		Name:   "West Wharf",
		Blocks: []string{"Main West Wharf", "Keamari"},
	},
	{
		Name:   "Yasinabad",
		Blocks: []string{"Main Yasinabad", "Korangi"},
	},
	{
		Name:   "Zamzama",
		Blocks: []string{"Main Zamzama", "Clifton"},
	},
	{
		Name:   "Zaman Town",
		Blocks: []string{"Main Zaman Town", "Korangi"},
	},
}
