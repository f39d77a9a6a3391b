package services

// BuiltinCatalog returns the seed destinations. Costs are per person in local currency.
func BuiltinCatalog() []DestinationSeed {
	return []DestinationSeed{
		{
			Profile: DestinationProfile{ID: "seoul", Name: "Seoul", Country: "South Korea", Currency: "KRW", Language: "Korean", Timezone: "Asia/Seoul", BestTime: "Spring and autumn"},
			Aliases: []string{"首尔", "서울", "korea", "south korea", "韩国", "한국", "seoul, korea"},
			Venues: []Venue{
				{Name: "Gyeongbokgung Palace", Kind: KindAttraction, Category: "Culture", Cost: 3000, Duration: "2-3 hours", Rating: 4.5, Description: "Main royal palace of the Joseon dynasty with guard-changing ceremonies", Tags: NewTagSet("history", "culture", "palace"), Location: "Jongno-gu"},
				{Name: "Bukchon Hanok Village", Kind: KindAttraction, Category: "Culture", Cost: 0, Duration: "2 hours", Rating: 4.3, Description: "Preserved hillside neighbourhood of traditional hanok houses", Tags: NewTagSet("history", "culture", "architecture"), Location: "Jongno-gu"},
				{Name: "Gwangjang Market", Kind: KindAttraction, Category: "Market", Cost: 0, Duration: "1-2 hours", Rating: 4.4, Description: "Century-old market known for bindaetteok and street food stalls", Tags: NewTagSet("food", "street food", "market", "history"), Location: "Jongno-gu"},
				{Name: "Hongdae", Kind: KindAttraction, Category: "Entertainment", Cost: 0, Duration: "4-5 hours", Rating: 4.4, Description: "University district with K-pop busking, indie music and nightlife", Tags: NewTagSet("k-pop", "nightlife", "trendy"), Location: "Mapo-gu"},
				{Name: "Namsan Seoul Tower", Kind: KindAttraction, Category: "Landmark", Cost: 21000, Duration: "2 hours", Rating: 4.2, Description: "Observation tower on Namsan mountain with city views", Tags: NewTagSet("nature", "views", "landmark"), Location: "Yongsan-gu"},
				{Name: "Myeongdong Korean BBQ", Kind: KindRestaurant, Category: "Korean BBQ", Cost: 15000, Duration: "1-2 hours", Rating: 4.6, Description: "Classic Korean barbecue with hanwoo beef and pork belly", Tags: NewTagSet("food", "bbq", "traditional", "korean"), Location: "Myeongdong", Specialties: []string{"Hanwoo beef", "Samgyeopsal", "Kimchi"}},
				{Name: "Hongdae Theme Cafe", Kind: KindRestaurant, Category: "Cafe", Cost: 8000, Duration: "1 hour", Rating: 4.4, Description: "Trendy cafe decorated around K-pop idols", Tags: NewTagSet("cafe", "k-pop", "trendy", "food"), Location: "Hongdae", Specialties: []string{"Latte", "Desserts"}},
				{Name: "Tosokchon Samgyetang", Kind: KindRestaurant, Category: "Korean", Cost: 20000, Duration: "1 hour", Rating: 4.5, Description: "Ginseng chicken soup served in a hanok near the palace", Tags: NewTagSet("food", "traditional", "korean", "history"), Location: "Jongno-gu", Specialties: []string{"Samgyetang"}},
				{Name: "Myeongdong Shopping Street", Kind: KindShopping, Category: "Shopping", Cost: 0, Duration: "3-4 hours", Rating: 4.5, Description: "Seoul's busiest shopping area for cosmetics, fashion and street food", Tags: NewTagSet("shopping", "cosmetics", "fashion", "street food"), Location: "Myeongdong"},
				{Name: "Dongdaemun Design Plaza", Kind: KindShopping, Category: "Design", Cost: 0, Duration: "2-3 hours", Rating: 4.3, Description: "Futuristic design landmark surrounded by late-night fashion malls", Tags: NewTagSet("design", "fashion", "architecture", "art", "shopping"), Location: "Dongdaemun-gu"},
				{Name: "Insadong", Kind: KindShopping, Category: "Crafts", Cost: 0, Duration: "2 hours", Rating: 4.2, Description: "Street of antique shops, tea houses and traditional crafts", Tags: NewTagSet("culture", "art", "crafts", "shopping"), Location: "Jongno-gu"},
			},
		},
		{
			Profile: DestinationProfile{ID: "tokyo", Name: "Tokyo", Country: "Japan", Currency: "JPY", Language: "Japanese", Timezone: "Asia/Tokyo", BestTime: "Spring and autumn"},
			Aliases: []string{"东京", "東京", "とうきょう", "도쿄", "japan", "日本", "일본"},
			Venues: []Venue{
				{Name: "Senso-ji Temple", Kind: KindAttraction, Category: "Culture", Cost: 0, Duration: "2-3 hours", Rating: 4.2, Description: "Tokyo's oldest temple with the Nakamise shopping lane", Tags: NewTagSet("temple", "traditional", "culture", "history"), Location: "Taito"},
				{Name: "Meiji Shrine", Kind: KindAttraction, Category: "Culture", Cost: 0, Duration: "1-2 hours", Rating: 4.5, Description: "Forested Shinto shrine next to Harajuku", Tags: NewTagSet("culture", "nature", "history"), Location: "Shibuya"},
				{Name: "Tsukiji Outer Market", Kind: KindAttraction, Category: "Market", Cost: 0, Duration: "2 hours", Rating: 4.4, Description: "Seafood stalls, knives and tamagoyaki near the old fish market", Tags: NewTagSet("food", "market", "seafood"), Location: "Chuo"},
				{Name: "teamLab Planets", Kind: KindAttraction, Category: "Art", Cost: 3800, Duration: "2 hours", Rating: 4.6, Description: "Immersive digital art museum", Tags: NewTagSet("art", "museum", "digital"), Location: "Koto"},
				{Name: "Ginza Sushi Counter", Kind: KindRestaurant, Category: "Japanese", Cost: 20000, Duration: "1-2 hours", Rating: 4.8, Description: "Edomae sushi omakase at a ten-seat counter", Tags: NewTagSet("sushi", "traditional", "japanese", "food"), Location: "Ginza", Specialties: []string{"Otoro", "Uni", "Tamagoyaki"}},
				{Name: "Ichiran Ramen", Kind: KindRestaurant, Category: "Ramen", Cost: 1200, Duration: "30 minutes", Rating: 4.5, Description: "Tonkotsu ramen served in solo booths", Tags: NewTagSet("ramen", "japanese", "food"), Location: "Shinjuku", Specialties: []string{"Tonkotsu ramen", "Chashu"}},
				{Name: "Omoide Yokocho", Kind: KindRestaurant, Category: "Izakaya", Cost: 3000, Duration: "1-2 hours", Rating: 4.3, Description: "Narrow alleys of yakitori stalls by Shinjuku station", Tags: NewTagSet("yakitori", "nightlife", "food", "history"), Location: "Shinjuku", Specialties: []string{"Yakitori", "Highball"}},
				{Name: "Akihabara Electric Town", Kind: KindShopping, Category: "Electronics", Cost: 0, Duration: "4-5 hours", Rating: 4.7, Description: "Anime, games and electronics", Tags: NewTagSet("anime", "electronics", "shopping"), Location: "Chiyoda"},
				{Name: "Ginza Shopping District", Kind: KindShopping, Category: "Luxury", Cost: 0, Duration: "3-4 hours", Rating: 4.6, Description: "Flagship department stores and luxury boutiques", Tags: NewTagSet("luxury", "fashion", "shopping"), Location: "Ginza"},
				{Name: "Takeshita Street", Kind: KindShopping, Category: "Fashion", Cost: 0, Duration: "2 hours", Rating: 4.1, Description: "Harajuku street fashion and crepe stands", Tags: NewTagSet("fashion", "trendy", "shopping", "street food"), Location: "Harajuku"},
			},
		},
		{
			Profile: DestinationProfile{ID: "beijing", Name: "Beijing", Country: "China", Currency: "CNY", Language: "Chinese", Timezone: "Asia/Shanghai", BestTime: "Autumn"},
			Aliases: []string{"北京", "peking", "베이징", "ペキン"},
			Venues: []Venue{
				{Name: "Forbidden City", Kind: KindAttraction, Category: "Culture", Cost: 60, Duration: "3-4 hours", Rating: 4.8, Description: "Imperial palace of the Ming and Qing dynasties", Tags: NewTagSet("history", "culture", "palace"), Location: "Dongcheng"},
				{Name: "Mutianyu Great Wall", Kind: KindAttraction, Category: "Landmark", Cost: 45, Duration: "4-5 hours", Rating: 4.7, Description: "Restored section of the Great Wall with cable car access", Tags: NewTagSet("history", "nature", "hiking"), Location: "Huairou"},
				{Name: "Temple of Heaven", Kind: KindAttraction, Category: "Culture", Cost: 34, Duration: "2 hours", Rating: 4.6, Description: "Ming dynasty altar complex in a large park", Tags: NewTagSet("history", "culture", "park"), Location: "Dongcheng"},
				{Name: "798 Art District", Kind: KindAttraction, Category: "Art", Cost: 0, Duration: "2-3 hours", Rating: 4.3, Description: "Former factories turned into galleries and studios", Tags: NewTagSet("art", "design", "gallery"), Location: "Chaoyang"},
				{Name: "Quanjude Roast Duck", Kind: KindRestaurant, Category: "Peking duck", Cost: 200, Duration: "1-2 hours", Rating: 4.4, Description: "Historic roast duck house dating back to 1864", Tags: NewTagSet("food", "traditional", "history"), Location: "Qianmen", Specialties: []string{"Peking duck"}},
				{Name: "Huguosi Snacks", Kind: KindRestaurant, Category: "Street food", Cost: 40, Duration: "45 minutes", Rating: 4.2, Description: "Old Beijing snacks such as douzhi and aiwowo", Tags: NewTagSet("food", "street food", "traditional"), Location: "Xicheng", Specialties: []string{"Douzhi", "Aiwowo"}},
				{Name: "Siji Minfu", Kind: KindRestaurant, Category: "Beijing cuisine", Cost: 150, Duration: "1-2 hours", Rating: 4.6, Description: "Popular duck restaurant with Forbidden City views", Tags: NewTagSet("food", "duck"), Location: "Dongcheng", Specialties: []string{"Roast duck", "Zhajiangmian"}},
				{Name: "Wangfujing Street", Kind: KindShopping, Category: "Shopping", Cost: 0, Duration: "2-3 hours", Rating: 4.3, Description: "Pedestrian shopping street with department stores", Tags: NewTagSet("shopping", "fashion"), Location: "Dongcheng"},
				{Name: "Nanluoguxiang", Kind: KindShopping, Category: "Hutong", Cost: 0, Duration: "2 hours", Rating: 4.1, Description: "Hutong lane of boutiques and snack stalls", Tags: NewTagSet("shopping", "culture", "street food"), Location: "Dongcheng"},
				{Name: "Panjiayuan Antique Market", Kind: KindShopping, Category: "Antiques", Cost: 0, Duration: "2-3 hours", Rating: 4.4, Description: "Weekend flea market of antiques and crafts", Tags: NewTagSet("shopping", "art", "antiques", "history"), Location: "Chaoyang"},
			},
		},
		{
			Profile: DestinationProfile{ID: "shanghai", Name: "Shanghai", Country: "China", Currency: "CNY", Language: "Chinese", Timezone: "Asia/Shanghai", BestTime: "Spring and autumn"},
			Aliases: []string{"上海", "상하이", "シャンハイ"},
			Venues: []Venue{
				{Name: "The Bund", Kind: KindAttraction, Category: "Landmark", Cost: 0, Duration: "2 hours", Rating: 4.7, Description: "Riverside promenade of colonial-era buildings facing Pudong", Tags: NewTagSet("history", "architecture", "views"), Location: "Huangpu"},
				{Name: "Yu Garden", Kind: KindAttraction, Category: "Culture", Cost: 40, Duration: "2 hours", Rating: 4.4, Description: "Classical Ming garden beside the old town bazaar", Tags: NewTagSet("culture", "history", "nature", "garden"), Location: "Huangpu"},
				{Name: "Shanghai Museum", Kind: KindAttraction, Category: "Art", Cost: 0, Duration: "2-3 hours", Rating: 4.6, Description: "Ancient Chinese bronzes, ceramics and calligraphy", Tags: NewTagSet("art", "museum", "history"), Location: "People's Square"},
				{Name: "Jia Jia Tang Bao", Kind: KindRestaurant, Category: "Dumplings", Cost: 50, Duration: "45 minutes", Rating: 4.5, Description: "Soup dumplings made to order", Tags: NewTagSet("food", "dumplings", "local"), Location: "Huangpu", Specialties: []string{"Xiaolongbao"}},
				{Name: "Old Jesse", Kind: KindRestaurant, Category: "Shanghainese", Cost: 180, Duration: "1-2 hours", Rating: 4.3, Description: "Home-style Shanghainese cooking", Tags: NewTagSet("food", "traditional", "local"), Location: "Xuhui", Specialties: []string{"Hongshao rou", "Scallion fish head"}},
				{Name: "Nanjing Road", Kind: KindShopping, Category: "Shopping", Cost: 0, Duration: "2-3 hours", Rating: 4.4, Description: "Neon-lit pedestrian shopping street", Tags: NewTagSet("shopping", "fashion"), Location: "Huangpu"},
				{Name: "Tianzifang", Kind: KindShopping, Category: "Crafts", Cost: 0, Duration: "2 hours", Rating: 4.2, Description: "Shikumen alleys with design shops and cafes", Tags: NewTagSet("shopping", "art", "culture"), Location: "Huangpu"},
			},
		},
		{
			Profile: DestinationProfile{ID: "new york", Name: "New York", Country: "United States", Currency: "USD", Language: "English", Timezone: "America/New_York", BestTime: "Spring and autumn"},
			Aliases: []string{"new york city", "nyc", "ny", "纽约", "뉴욕", "ニューヨーク"},
			Venues: []Venue{
				{Name: "Central Park", Kind: KindAttraction, Category: "Park", Cost: 0, Duration: "2-3 hours", Rating: 4.8, Description: "Urban park with lakes, lawns and the Ramble", Tags: NewTagSet("nature", "park", "outdoor"), Location: "Manhattan"},
				{Name: "The Metropolitan Museum of Art", Kind: KindAttraction, Category: "Art", Cost: 30, Duration: "3-4 hours", Rating: 4.8, Description: "Encyclopedic art museum on Fifth Avenue", Tags: NewTagSet("art", "museum", "history"), Location: "Upper East Side"},
				{Name: "Statue of Liberty", Kind: KindAttraction, Category: "Landmark", Cost: 25, Duration: "3-4 hours", Rating: 4.7, Description: "Ferry to Liberty and Ellis Islands", Tags: NewTagSet("history", "landmark", "culture"), Location: "Liberty Island"},
				{Name: "Katz's Delicatessen", Kind: KindRestaurant, Category: "Deli", Cost: 30, Duration: "1 hour", Rating: 4.5, Description: "Lower East Side deli famous for pastrami on rye", Tags: NewTagSet("food", "history", "local"), Location: "Lower East Side", Specialties: []string{"Pastrami sandwich"}},
				{Name: "Joe's Pizza", Kind: KindRestaurant, Category: "Pizza", Cost: 10, Duration: "30 minutes", Rating: 4.4, Description: "Classic New York slice shop", Tags: NewTagSet("food", "street food"), Location: "Greenwich Village", Specialties: []string{"Cheese slice"}},
				{Name: "Chelsea Market", Kind: KindRestaurant, Category: "Food hall", Cost: 25, Duration: "1-2 hours", Rating: 4.5, Description: "Food hall in a former biscuit factory", Tags: NewTagSet("food", "market", "shopping"), Location: "Chelsea", Specialties: []string{"Tacos", "Lobster rolls"}},
				{Name: "Fifth Avenue", Kind: KindShopping, Category: "Luxury", Cost: 0, Duration: "2-3 hours", Rating: 4.5, Description: "Flagship stores between Central Park and Rockefeller Center", Tags: NewTagSet("shopping", "luxury", "fashion"), Location: "Midtown"},
				{Name: "SoHo", Kind: KindShopping, Category: "Fashion", Cost: 0, Duration: "2-3 hours", Rating: 4.4, Description: "Cast-iron streets of boutiques and galleries", Tags: NewTagSet("shopping", "fashion", "art"), Location: "Lower Manhattan"},
			},
		},
		{
			Profile: DestinationProfile{ID: "paris", Name: "Paris", Country: "France", Currency: "EUR", Language: "French", Timezone: "Europe/Paris", BestTime: "Late spring"},
			Aliases: []string{"巴黎", "파리", "パリ", "france", "法国", "프랑스"},
			Venues: []Venue{
				{Name: "Louvre Museum", Kind: KindAttraction, Category: "Art", Cost: 22, Duration: "3-4 hours", Rating: 4.7, Description: "The world's most visited art museum", Tags: NewTagSet("art", "museum", "history"), Location: "1st arrondissement"},
				{Name: "Eiffel Tower", Kind: KindAttraction, Category: "Landmark", Cost: 29, Duration: "2-3 hours", Rating: 4.6, Description: "Iron lattice tower with summit views", Tags: NewTagSet("landmark", "views", "history"), Location: "7th arrondissement"},
				{Name: "Montmartre", Kind: KindAttraction, Category: "Culture", Cost: 0, Duration: "2-3 hours", Rating: 4.5, Description: "Hilltop artists' village around Sacre-Coeur", Tags: NewTagSet("art", "culture", "views"), Location: "18th arrondissement"},
				{Name: "Jardin du Luxembourg", Kind: KindAttraction, Category: "Park", Cost: 0, Duration: "1-2 hours", Rating: 4.6, Description: "Formal gardens around the Senate palace", Tags: NewTagSet("nature", "garden", "park"), Location: "6th arrondissement"},
				{Name: "Le Comptoir du Relais", Kind: KindRestaurant, Category: "Bistro", Cost: 45, Duration: "1-2 hours", Rating: 4.4, Description: "Saint-Germain bistro serving French classics", Tags: NewTagSet("food", "french", "traditional"), Location: "Saint-Germain", Specialties: []string{"Duck confit", "Pate"}},
				{Name: "Marche des Enfants Rouges", Kind: KindRestaurant, Category: "Market", Cost: 20, Duration: "1 hour", Rating: 4.3, Description: "Oldest covered market in Paris with food stalls", Tags: NewTagSet("food", "market", "history"), Location: "Le Marais", Specialties: []string{"Crepes", "Moroccan couscous"}},
				{Name: "Galeries Lafayette", Kind: KindShopping, Category: "Department store", Cost: 0, Duration: "2-3 hours", Rating: 4.5, Description: "Belle Epoque department store under a stained-glass dome", Tags: NewTagSet("shopping", "fashion", "luxury", "architecture"), Location: "9th arrondissement"},
				{Name: "Le Marais Boutiques", Kind: KindShopping, Category: "Fashion", Cost: 0, Duration: "2 hours", Rating: 4.3, Description: "Independent designers and concept stores", Tags: NewTagSet("shopping", "fashion", "art"), Location: "Le Marais"},
			},
		},
	}
}
