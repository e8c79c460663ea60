package local

import "github.com/nextsound/nextsound/internal/catalog"

// Authored dataset. Entries mirror chart data so the offline experience
// resembles the live one. Each bucket keeps one track per artist.

var latestHits = []catalog.Track{
	{
		ID:         "2plbrEY59IikOBgBGLjaoe",
		ExternalID: "2plbrEY59IikOBgBGLjaoe",
		Title:      "Die With A Smile",
		Name:       "Die With A Smile",
		Artist:     "Bruno Mars, Lady Gaga",
		Album:      "Die With A Smile",
		Overview:   "Bruno Mars & Lady Gaga duet, one of the most streamed songs of 2024",
		Genre:      "Pop",
		Year:       2024,
		ImageURL:   "https://i.scdn.co/image/ab67616d0000b2734bac5946590406d6ffb7ed6a",
		DurationMS: 251000,
		Popularity: 93,
	},
	{
		ID:         "2qSkIjg1o9h3YT9RAgYN75",
		ExternalID: "2qSkIjg1o9h3YT9RAgYN75",
		Title:      "Espresso",
		Name:       "Espresso",
		Artist:     "Sabrina Carpenter",
		Album:      "Short n' Sweet",
		Overview:   "Sabrina Carpenter's 2024 summer hit",
		Genre:      "Dance Pop",
		Year:       2024,
		ImageURL:   "https://i.scdn.co/image/ab67616d0000b273659cd4673230913b3918e0d5",
		DurationMS: 175000,
		Popularity: 92,
	},
	{
		ID:         "6dOtVTDdiauQNBQEDOtlAB",
		ExternalID: "6dOtVTDdiauQNBQEDOtlAB",
		Title:      "BIRDS OF A FEATHER",
		Name:       "BIRDS OF A FEATHER",
		Artist:     "Billie Eilish",
		Album:      "HIT ME HARD AND SOFT",
		Overview:   "Billie Eilish - 2024 chart topper",
		Genre:      "Alternative Pop",
		Year:       2024,
		ImageURL:   "https://i.scdn.co/image/ab67616d0000b27371d62ea7ea8a5be92d3c1f62",
		DurationMS: 210000,
		Popularity: 96,
	},
	{
		ID:         "1Qrg8KqiBpW07V7PNxwwwL",
		ExternalID: "1Qrg8KqiBpW07V7PNxwwwL",
		Title:      "Kill Bill",
		Name:       "Kill Bill",
		Artist:     "SZA",
		Album:      "SOS",
		Overview:   "SZA - R&B sensation from SOS",
		Genre:      "R&B",
		Year:       2022,
		ImageURL:   "https://i.scdn.co/image/ab67616d0000b2730c471c36970b9406233842a5",
		DurationMS: 153000,
		Popularity: 90,
	},
	{
		ID:         "0yLdNVWF3Srea0uzk55zFn",
		ExternalID: "0yLdNVWF3Srea0uzk55zFn",
		Title:      "Flowers",
		Name:       "Flowers",
		Artist:     "Miley Cyrus",
		Album:      "Endless Summer Vacation",
		Overview:   "Miley Cyrus - 2023 global number one",
		Genre:      "Pop",
		Year:       2023,
		ImageURL:   "https://i.scdn.co/image/ab67616d0000b273cd222052a2594be29a6616b5",
		DurationMS: 200000,
		Popularity: 89,
	},
	{
		ID:         "4Dvkj6JhhA12EX05fT7y2e",
		ExternalID: "4Dvkj6JhhA12EX05fT7y2e",
		Title:      "As It Was",
		Name:       "As It Was",
		Artist:     "Harry Styles",
		Album:      "Harry's House",
		Overview:   "Harry Styles - record-breaking lead single",
		Genre:      "Pop Rock",
		Year:       2022,
		ImageURL:   "https://i.scdn.co/image/ab67616d0000b2732e8ed79e177ff6011076f5f0",
		DurationMS: 167000,
		Popularity: 95,
	},
	{
		ID:         "7221xIgOnuakPdLqT0F3nP",
		ExternalID: "7221xIgOnuakPdLqT0F3nP",
		Title:      "I Had Some Help",
		Name:       "I Had Some Help",
		Artist:     "Post Malone, Morgan Wallen",
		Album:      "F-1 Trillion",
		Overview:   "Post Malone's country turn with Morgan Wallen",
		Genre:      "Country",
		Year:       2024,
		ImageURL:   "https://i.scdn.co/image/ab67616d0000b273b7b3f7d142b909a68cbb8cb9",
		DurationMS: 178000,
		Popularity: 91,
	},
	{
		ID:         "5N3hjp1WNayUPZrA8kJmJP",
		ExternalID: "5N3hjp1WNayUPZrA8kJmJP",
		Title:      "Good Luck, Babe!",
		Name:       "Good Luck, Babe!",
		Artist:     "Chappell Roan",
		Album:      "Good Luck, Babe!",
		Overview:   "Chappell Roan - 2024 synthpop breakout",
		Genre:      "Synthpop",
		Year:       2024,
		ImageURL:   "https://i.scdn.co/image/ab67616d0000b2731ad4dd1b6e2b4d7b813f6a05",
		DurationMS: 218000,
		Popularity: 88,
	},
}

var popularTracks = []catalog.Track{
	{
		ID:         "003vvx7Niy0yvhvHt4a68B",
		ExternalID: "003vvx7Niy0yvhvHt4a68B",
		Title:      "Mr. Brightside",
		Name:       "Mr. Brightside",
		Artist:     "The Killers",
		Album:      "Hot Fuss",
		Overview:   "The Killers - indie rock anthem from Hot Fuss",
		Genre:      "Alternative Rock",
		Year:       2004,
		ImageURL:   "https://i.scdn.co/image/ab67616d0000b273ccdddd46119a4ff53eaf1f5d",
		DurationMS: 222000,
		Popularity: 83,
	},
	{
		ID:         "60nZcImufyMA1MKQY3dcCH",
		ExternalID: "60nZcImufyMA1MKQY3dcCH",
		Title:      "Here Comes the Sun",
		Name:       "Here Comes the Sun",
		Artist:     "The Beatles",
		Album:      "Abbey Road",
		Overview:   "The Beatles - timeless classic from Abbey Road",
		Genre:      "Classic Rock",
		Year:       1969,
		ImageURL:   "https://i.scdn.co/image/ab67616d0000b273aeb62b5d30c4b5dbd5e77f98",
		DurationMS: 185000,
		Popularity: 81,
	},
	{
		ID:         "2ye2Wgw4gimLv2eAKyk1NB",
		ExternalID: "2ye2Wgw4gimLv2eAKyk1NB",
		Title:      "Watermelon Sugar",
		Name:       "Watermelon Sugar",
		Artist:     "Harry Styles",
		Album:      "Fine Line",
		Overview:   "Harry Styles - summer hit from Fine Line",
		Genre:      "Pop Rock",
		Year:       2019,
		ImageURL:   "https://i.scdn.co/image/ab67616d0000b27377fdcfda6535601aff081b6a",
		DurationMS: 174000,
		Popularity: 86,
	},
	{
		ID:         "6f70bfcAe3BPKCljHvBw66",
		ExternalID: "6f70bfcAe3BPKCljHvBw66",
		Title:      "Someone Like You",
		Name:       "Someone Like You",
		Artist:     "Adele",
		Album:      "21",
		Overview:   "Adele - ballad from 21",
		Genre:      "Soul",
		Year:       2011,
		ImageURL:   "https://i.scdn.co/image/ab67616d0000b273c9b294a88d8537e8dbc13b85",
		DurationMS: 285000,
		Popularity: 84,
	},
	{
		ID:         "4uLU6hMCjMI75M1A2tKUQC",
		ExternalID: "4uLU6hMCjMI75M1A2tKUQC",
		Title:      "Never Gonna Give You Up",
		Name:       "Never Gonna Give You Up",
		Artist:     "Rick Astley",
		Album:      "Whenever You Need Somebody",
		Overview:   "Rick Astley - iconic 80s hit",
		Genre:      "Synthpop",
		Year:       1987,
		ImageURL:   "https://i.scdn.co/image/ab67616d0000b273ba5db46f4b838ef6027e6f96",
		DurationMS: 213000,
		Popularity: 79,
	},
	{
		ID:         "0VjIjW4GlUZAMYd2vXMi3b",
		ExternalID: "0VjIjW4GlUZAMYd2vXMi3b",
		Title:      "Blinding Lights",
		Name:       "Blinding Lights",
		Artist:     "The Weeknd",
		Album:      "After Hours",
		Overview:   "The Weeknd - most-streamed song of all time",
		Genre:      "Synthwave",
		Year:       2019,
		ImageURL:   "https://i.scdn.co/image/ab67616d0000b2738863bc11d2aa12b54f5aeb36",
		DurationMS: 200000,
		Popularity: 92,
	},
	{
		ID:         "7qiZfU4dY1lWllzX7mPBI3",
		ExternalID: "7qiZfU4dY1lWllzX7mPBI3",
		Title:      "Shape of You",
		Name:       "Shape of You",
		Artist:     "Ed Sheeran",
		Album:      "÷ (Divide)",
		Overview:   "Ed Sheeran - 2017 global hit",
		Genre:      "Pop",
		Year:       2017,
		ImageURL:   "https://i.scdn.co/image/ab67616d0000b273ba5db46f4b838ef6027e6f97",
		DurationMS: 233000,
		Popularity: 87,
	},
	{
		ID:         "39LLxExYz6ewLAcYrzQQyP",
		ExternalID: "39LLxExYz6ewLAcYrzQQyP",
		Title:      "Levitating",
		Name:       "Levitating",
		Artist:     "Dua Lipa",
		Album:      "Future Nostalgia",
		Overview:   "Dua Lipa - disco pop from Future Nostalgia",
		Genre:      "Dance Pop",
		Year:       2020,
		ImageURL:   "https://i.scdn.co/image/ab67616d0000b273bd26ede1ae69327010d49946",
		DurationMS: 203000,
		Popularity: 85,
	},
}
