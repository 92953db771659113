package content

import "github.com/TechMintOfficial/emotion-verse-recommend/internal/emotion"

// Catalog is the hand-authored fallback content served when a live
// provider call fails or cannot be attempted. Emotions without an entry
// yield an empty list, not an error.
type Catalog struct {
	entries map[Kind]map[emotion.Label][]Item
}

// Items returns the fallback entries for a kind and emotion. The returned
// slice is a copy; callers may not mutate catalog state.
func (c *Catalog) Items(kind Kind, label emotion.Label) []Item {
	byEmotion, ok := c.entries[kind]
	if !ok {
		return []Item{}
	}
	items, ok := byEmotion[label]
	if !ok {
		return []Item{}
	}
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// DefaultCatalog returns the built-in fallback catalog. The set mixes
// English and Tamil titles, mirroring the bilingual audience of the
// product.
func DefaultCatalog() *Catalog {
	return &Catalog{entries: map[Kind]map[emotion.Label][]Item{
		KindMovie: {
			emotion.Happy: {
				{ID: "mov1", Title: "The Pursuit of Happyness", Description: "An inspiring story of determination and success", Genre: "Drama", Year: 2006, Rating: 8.0, ExternalLink: "https://www.imdb.com/title/tt0454921/"},
				{ID: "mov2", Title: "Moana", Description: "A spirited Polynesian teenager sails across the Pacific", Genre: "Animation", Year: 2016, Rating: 7.6},
				{ID: "mov3", Title: "Vikram Vedha", Description: "A clever cat-and-mouse game between a cop and a gangster", Genre: "Action Thriller", Year: 2017, Rating: 8.4},
				{ID: "mov4", Title: "Super Deluxe", Description: "An anthology of interconnected stories", Genre: "Drama", Year: 2019, Rating: 8.3},
			},
			emotion.Sad: {
				{ID: "mov5", Title: "Inside Out", Description: "A young girl struggles with moving to a new city", Genre: "Animation", Year: 2015, Rating: 8.1},
				{ID: "mov6", Title: "Manchester by the Sea", Description: "A man confronts his tragic past", Genre: "Drama", Year: 2016, Rating: 7.8},
				{ID: "mov7", Title: "Kaaka Muttai", Description: "Two slum boys dream of eating pizza", Genre: "Drama", Year: 2014, Rating: 8.1},
			},
			emotion.Angry: {
				{ID: "mov8", Title: "Mad Max: Fury Road", Description: "A post-apocalyptic action adventure", Genre: "Action", Year: 2015, Rating: 8.1},
				{ID: "mov9", Title: "Visaranai", Description: "A hard-hitting tale of police brutality", Genre: "Crime Drama", Year: 2015, Rating: 8.0},
			},
			emotion.Surprised: {
				{ID: "mov10", Title: "Inception", Description: "A mind-bending thriller about dreams within dreams", Genre: "Sci-Fi", Year: 2010, Rating: 8.8},
				{ID: "mov11", Title: "Thani Oruvan", Description: "An honest cop battles a brilliant criminal", Genre: "Action Thriller", Year: 2015, Rating: 8.2},
			},
			emotion.Fear: {
				{ID: "mov12", Title: "Get Out", Description: "A young man uncovers disturbing secrets", Genre: "Horror Thriller", Year: 2017, Rating: 7.7},
				{ID: "mov13", Title: "Yaamirukka Bayamey", Description: "A horror comedy about ghosts in a mansion", Genre: "Horror Comedy", Year: 2014, Rating: 6.8},
			},
			emotion.Neutral: {
				{ID: "mov14", Title: "The Social Network", Description: "The story of Facebook's creation", Genre: "Biography", Year: 2010, Rating: 7.7},
				{ID: "mov15", Title: "96", Description: "A nostalgic love story between high school sweethearts", Genre: "Romance", Year: 2018, Rating: 8.5},
			},
		},
		KindSong: {
			emotion.Happy: {
				{ID: "song1", Title: "Happy", Artist: "Pharrell Williams", Description: "Pharrell Williams - Uplifting pop anthem", Genre: "Pop", Year: 2013, ExternalLink: "https://open.spotify.com/track/60nZcImufyMA1MKQY3dcCH"},
				{ID: "song2", Title: "Maari Thara Local", Description: "From Maari - Energetic folk song", Genre: "Folk", Year: 2015},
				{ID: "song3", Title: "Don't Worry Be Happy", Artist: "Bobby McFerrin", Description: "Bobby McFerrin - Feel-good classic", Genre: "Reggae", Year: 1988},
			},
			emotion.Sad: {
				{ID: "song4", Title: "Someone Like You", Artist: "Adele", Description: "Adele - Heart-wrenching ballad", Genre: "Pop Ballad", Year: 2011},
				{ID: "song5", Title: "Yaakai Thiri", Description: "From 96 - Melancholic melody about lost love", Genre: "Melody", Year: 2018},
			},
			emotion.Angry: {
				{ID: "song6", Title: "We Will Rock You", Artist: "Queen", Description: "Queen - Powerful anthem", Genre: "Rock", Year: 1977},
				{ID: "song7", Title: "Vaathi Coming", Description: "From Master - High-energy mass song", Genre: "Mass", Year: 2021},
			},
			emotion.Surprised: {
				{ID: "song8", Title: "Bohemian Rhapsody", Artist: "Queen", Description: "Queen - Epic rock opera", Genre: "Rock Opera", Year: 1975},
				{ID: "song9", Title: "Aalaporaan Thamizhan", Description: "From Mersal - Patriotic anthem", Genre: "Patriotic", Year: 2017},
			},
			emotion.Fear: {
				{ID: "song10", Title: "Thriller", Artist: "Michael Jackson", Description: "Michael Jackson - Spooky pop classic", Genre: "Pop", Year: 1982},
			},
			emotion.Neutral: {
				{ID: "song11", Title: "Imagine", Artist: "John Lennon", Description: "John Lennon - Peaceful anthem", Genre: "Folk Rock", Year: 1971},
				{ID: "song12", Title: "Munbe Vaa", Description: "From Sillunu Oru Kaadhal - Romantic melody", Genre: "Romance", Year: 2006},
			},
		},
		KindBook: {
			emotion.Happy: {
				{ID: "book1", Title: "The Alchemist", Author: "Paulo Coelho", Description: "Paulo Coelho - A journey of self-discovery", Genre: "Fiction", Year: 1988, Rating: 3.9, ExternalLink: "https://www.goodreads.com/book/show/865.The_Alchemist"},
				{ID: "book2", Title: "Ponniyin Selvan", Author: "Kalki", Description: "Kalki - Epic historical novel about Chola dynasty", Genre: "Historical Fiction", Year: 1955, Rating: 4.5},
			},
			emotion.Sad: {
				{ID: "book3", Title: "The Fault in Our Stars", Author: "John Green", Description: "John Green - A touching love story", Genre: "Young Adult", Year: 2012, Rating: 4.0},
				{ID: "book4", Title: "Sivagamiyin Sabadham", Author: "Kalki", Description: "Kalki - Tragic tale of love and sacrifice", Genre: "Historical Fiction", Year: 1944, Rating: 4.3},
			},
			emotion.Angry: {
				{ID: "book5", Title: "1984", Author: "George Orwell", Description: "George Orwell - Dystopian classic about oppression", Genre: "Dystopian Fiction", Year: 1949, Rating: 4.2},
			},
			emotion.Surprised: {
				{ID: "book6", Title: "The Da Vinci Code", Author: "Dan Brown", Description: "Dan Brown - Mystery thriller with shocking revelations", Genre: "Mystery Thriller", Year: 2003, Rating: 3.8},
			},
			emotion.Fear: {
				{ID: "book7", Title: "The Shining", Author: "Stephen King", Description: "Stephen King - Terrifying psychological horror", Genre: "Horror", Year: 1977, Rating: 4.2},
			},
			emotion.Neutral: {
				{ID: "book8", Title: "Sapiens", Author: "Yuval Noah Harari", Description: "Yuval Noah Harari - A brief history of humankind", Genre: "Non-fiction", Year: 2011, Rating: 4.4},
				{ID: "book9", Title: "Arthamulla Indhu Matham", Author: "Kannadasan", Description: "Kannadasan - Philosophical insights into Hinduism", Genre: "Philosophy", Year: 1972, Rating: 4.2},
			},
		},
	}}
}
