package models

// Baseline counter values shown before any real activity happens.
const (
	DefaultTotalViews   = 50000
	DefaultTotalDiaries = 200
	DefaultTotalUsers   = 5000
)

// DefaultStats returns the stats record written on first run.
func DefaultStats() Stats {
	return Stats{
		TotalViews:   DefaultTotalViews,
		TotalDiaries: DefaultTotalDiaries,
		TotalUsers:   DefaultTotalUsers,
	}
}

// DefaultUsers returns the user list written on first run: the author of the
// seeded diaries.
func DefaultUsers() []User {
	return []User{
		{
			ID:        "1",
			Username:  "时光行者",
			CreatedAt: "2024-01-01",
		},
	}
}

// DefaultDiaries returns the diaries written on first run. Callers receive a
// fresh slice on every call; mutating it does not affect later seeds.
func DefaultDiaries() []Diary {
	return []Diary{
		{
			ID:         "1",
			Title:      "雨中的宁静",
			Content:    "窗外的雨滴轻轻敲打着玻璃，带来一份难得的宁静。我喜欢这样的天气，让人可以静下心来，思考生活中的点点滴滴。雨声如同大自然的交响乐，每一滴雨都在诉说着自己的故事。泡一杯热茶，坐在窗边，看着窗外的世界被雨水洗涤，心情也变得清新起来。",
			Excerpt:    "窗外的雨滴轻轻敲打着玻璃，带来一份难得的宁静...",
			CoverImage: "/diary-rain.jpg",
			Category:   "生活",
			Date:       "2024-01-15",
			Views:      1234,
			Comments:   []Comment{},
			Author:     "时光行者",
		},
		{
			ID:         "2",
			Title:      "咖啡与午后",
			Content:    "阳光透过咖啡馆的窗户，在桌面上投下斑驳的光影。我喜欢在这样的午后，找一个安静的角落，品味一杯香浓的咖啡。咖啡的香气在空气中弥漫，伴随着轻柔的音乐，时间仿佛慢了下来。这是属于自己的时光，可以阅读、思考，或者只是发呆。",
			Excerpt:    "阳光透过咖啡馆的窗户，在桌面上投下斑驳的光影...",
			CoverImage: "/diary-coffee.jpg",
			Category:   "随笔",
			Date:       "2024-01-14",
			Views:      987,
			Comments:   []Comment{},
			Author:     "时光行者",
		},
		{
			ID:         "3",
			Title:      "城市的黄昏",
			Content:    "夕阳西下，整座城市被染成了金黄色。站在高处俯瞰，楼宇间的光影交错，构成了一幅美丽的画卷。城市的黄昏总是让人感到既熟悉又陌生，熟悉的是每天都在这里生活，陌生的是每一次黄昏都有不同的美。这是属于城市的诗意时刻。",
			Excerpt:    "夕阳西下，整座城市被染成了金黄色...",
			CoverImage: "/diary-city.jpg",
			Category:   "摄影",
			Date:       "2024-01-13",
			Views:      2156,
			Comments:   []Comment{},
			Author:     "时光行者",
		},
	}
}

// Categories returns the fixed category list shown by the browse commands.
func Categories() []Category {
	return []Category{
		{ID: "life", Name: "生活", Description: "日常生活的点滴记录", Image: "/category-life.jpg"},
		{ID: "travel", Name: "旅行", Description: "探索世界的美好", Image: "/category-travel.jpg"},
		{ID: "food", Name: "美食", Description: "味蕾的奇妙旅程", Image: "/category-food.jpg"},
		{ID: "photo", Name: "摄影", Description: "用镜头捕捉瞬间", Image: "/category-photo.jpg"},
		{ID: "essay", Name: "随笔", Description: "随心的思考与感悟", Image: "/category-essay.jpg"},
		{ID: "music", Name: "音乐", Description: "旋律中的故事", Image: "/category-music.jpg"},
		{ID: "movie", Name: "电影", Description: "银幕内外的世界", Image: "/category-movie.jpg"},
		{ID: "book", Name: "读书", Description: "文字带来的启发", Image: "/category-book.jpg"},
	}
}
