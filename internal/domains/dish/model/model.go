package model

// Dish is one entry of the certification practice menu.
type Dish struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Series   string `json:"series"`
}

// DateSeries maps each event date to the dish series practiced that evening.
var DateSeries = map[string]string{
	"2026-03-14": "201A",
	"2026-03-21": "201B",
	"2026-04-11": "201C",
	"2026-04-18": "201D",
	"2026-04-25": "201E",
	"2026-05-02": "202A",
	"2026-05-09": "202B",
	"2026-05-16": "202C",
	"2026-06-13": "202D",
	"2026-06-20": "202E",
	"2026-06-27": "203A",
}

// Catalog is the full menu across every practice series.
var Catalog = []Dish{
	{ID: "201A-1", Name: "蒸牛肉丸", Series: "201A"},
	{ID: "201A-2", Name: "煙燻黃魚", Series: "201A"},
	{ID: "201A-3", Name: "五柳魷魚", Series: "201A"},
	{ID: "201A-4", Name: "白果燴芥菜", Series: "201A"},
	{ID: "201A-5", Name: "糖醋佛手黃瓜", Series: "201A"},
	{ID: "201A-6", Name: "掛霜腰果", Series: "201A"},
	{ID: "201A-7", Name: "炸韭菜春捲", Series: "201A"},

	{ID: "201B-1", Name: "酸菜炒牛肉絲", Series: "201B"},
	{ID: "201B-2", Name: "松鼠黃魚", Series: "201B"},
	{ID: "201B-3", Name: "白果炒魷魚", Series: "201B"},
	{ID: "201B-4", Name: "金銀蛋扒芥菜", Series: "201B"},
	{ID: "201B-5", Name: "涼拌佛手黃瓜", Series: "201B"},
	{ID: "201B-6", Name: "掛霜腰果", Series: "201B"},
	{ID: "201B-7", Name: "炸肉絲春捲", Series: "201B"},

	{ID: "201C-1", Name: "炒牛肉鬆", Series: "201C"},
	{ID: "201C-2", Name: "拆燴黃魚羹", Series: "201C"},
	{ID: "201C-3", Name: "椒鹽魷魚", Series: "201C"},
	{ID: "201C-4", Name: "金菇扒芥菜", Series: "201C"},
	{ID: "201C-5", Name: "麻辣佛手黃瓜", Series: "201C"},
	{ID: "201C-6", Name: "掛霜腰果", Series: "201C"},
	{ID: "201C-7", Name: "炸牡蠣春捲", Series: "201C"},

	{ID: "201D-1", Name: "煎牛肉餅", Series: "201D"},
	{ID: "201D-2", Name: "酥炸黃魚條", Series: "201D"},
	{ID: "201D-3", Name: "彩椒炒魷魚", Series: "201D"},
	{ID: "201D-4", Name: "酸辣黃瓜條", Series: "201D"},
	{ID: "201D-5", Name: "三菇燴芥菜", Series: "201D"},
	{ID: "201D-6", Name: "掛霜腰果", Series: "201D"},
	{ID: "201D-7", Name: "炸韮黃春捲", Series: "201D"},

	{ID: "201E-1", Name: "彩椒滑牛肉片", Series: "201E"},
	{ID: "201E-2", Name: "蒜子燒黃魚", Series: "201E"},
	{ID: "201E-3", Name: "西芹炒魷魚", Series: "201E"},
	{ID: "201E-4", Name: "廣東泡菜", Series: "201E"},
	{ID: "201E-5", Name: "竹笙燴芥菜", Series: "201E"},
	{ID: "201E-6", Name: "掛雙腰果", Series: "201E"},
	{ID: "201E-7", Name: "掛素菜春捲", Series: "201E"},

	{ID: "202A-1", Name: "炸杏片蝦球", Series: "202A"},
	{ID: "202A-2", Name: "粉蒸小排骨", Series: "202A"},
	{ID: "202A-3", Name: "蔥油雞", Series: "202A"},
	{ID: "202A-4", Name: "宮保墨魚捲", Series: "202A"},
	{ID: "202A-5", Name: "佛手白菜", Series: "202A"},
	{ID: "202A-6", Name: "鮮肉水餃", Series: "202A"},
	{ID: "202A-7", Name: "三絲蛋皮捲", Series: "202A"},

	{ID: "202B-1", Name: "京都排骨", Series: "202B"},
	{ID: "202B-2", Name: "椒鹽蝦球", Series: "202B"},
	{ID: "202B-3", Name: "人參枸杞醉雞", Series: "202B"},
	{ID: "202B-4", Name: "家常墨魚捲", Series: "202B"},
	{ID: "202B-5", Name: "香菇白菜膽", Series: "202B"},
	{ID: "202B-6", Name: "花素煎餃", Series: "202B"},
	{ID: "202B-7", Name: "高麗菜蛋皮捲", Series: "202B"},

	{ID: "202C-1", Name: "鼓汁小排骨", Series: "202C"},
	{ID: "202C-2", Name: "蝦丸蔬片湯", Series: "202C"},
	{ID: "202C-3", Name: "玉樹上湯雞", Series: "202C"},
	{ID: "202C-4", Name: "金鈎墨魚絲", Series: "202C"},
	{ID: "202C-5", Name: "什錦白菜捲", Series: "202C"},
	{ID: "202C-6", Name: "香煎餃子", Series: "202C"},
	{ID: "202C-7", Name: "豆芽菜蛋皮捲", Series: "202C"},

	{ID: "202D-1", Name: "蔥串排骨", Series: "202D"},
	{ID: "202D-2", Name: "時蔬燴蝦丸", Series: "202D"},
	{ID: "202D-3", Name: "燻雞", Series: "202D"},
	{ID: "202D-4", Name: "芫爆墨魚捲", Series: "202D"},
	{ID: "202D-5", Name: "銀杏白菜膽", Series: "202D"},
	{ID: "202D-6", Name: "蝦仁水餃", Series: "202D"},
	{ID: "202D-7", Name: "韭黃蛋皮捲", Series: "202D"},

	{ID: "202E-1", Name: "紅燒排骨", Series: "202E"},
	{ID: "202E-2", Name: "三絲蝦球", Series: "202E"},
	{ID: "202E-3", Name: "家鄉屈雞", Series: "202E"},
	{ID: "202E-4", Name: "蔥油灼墨魚片", Series: "202E"},
	{ID: "202E-5", Name: "千層白菜", Series: "202E"},
	{ID: "202E-6", Name: "冬粉蛋皮捲", Series: "202E"},
	{ID: "202E-7", Name: "高麗菜水餃", Series: "202E"},

	{ID: "203A-1", Name: "滑豬肉片", Series: "203A"},
	{ID: "203A-2", Name: "五柳鱸魚", Series: "203A"},
	{ID: "203A-3", Name: "蒸一品雞排", Series: "203A"},
	{ID: "203A-4", Name: "威化香蕉蝦捲", Series: "203A"},
	{ID: "203A-5", Name: "洋菇海皇羹", Series: "203A"},
	{ID: "203A-6", Name: "干貝燴芥菜", Series: "203A"},
	{ID: "203A-7", Name: "八寶芋泥", Series: "203A"},

	{ID: "203B-1", Name: "炒豬肉鬆", Series: "203B"},
	{ID: "203B-2", Name: "鱸魚兩吃", Series: "203B"},
	{ID: "203B-3", Name: "油淋去骨雞", Series: "203B"},
	{ID: "203B-4", Name: "百花豆腐", Series: "203B"},
	{ID: "203B-5", Name: "鮮菇三層樓", Series: "203B"},
	{ID: "203B-6", Name: "蟹肉燴芥菜", Series: "203B"},
	{ID: "203B-7", Name: "芋泥西米露", Series: "203B"},

	{ID: "203C-1", Name: "蒸豬肉丸", Series: "203C"},
	{ID: "203C-2", Name: "松鼠鱸魚", Series: "203C"},
	{ID: "203C-3", Name: "香橙燒雞排", Series: "203C"},
	{ID: "203C-4", Name: "紫菜沙拉蝦捲", Series: "203C"},
	{ID: "203C-5", Name: "珍菇翡翠芙蓉羹", Series: "203C"},
	{ID: "203C-6", Name: "香菇燴芥菜", Series: "203C"},
	{ID: "203C-7", Name: "蛋黃芋棗", Series: "203C"},

	{ID: "203D-1", Name: "乾炸豬肉丸", Series: "203D"},
	{ID: "203D-2", Name: "鱸魚羹", Series: "203D"},
	{ID: "203D-3", Name: "百花釀雞腿", Series: "203D"},
	{ID: "203D-4", Name: "蘋果蝦鬆", Series: "203D"},
	{ID: "203D-5", Name: "鮑菇燒白菜", Series: "203D"},
	{ID: "203D-6", Name: "蜊肉燴芥菜", Series: "203D"},
	{ID: "203D-7", Name: "紅心芋泥", Series: "203D"},

	{ID: "203E-1", Name: "煎豬肉餅", Series: "203E"},
	{ID: "203E-2", Name: "麒麟蒸魚", Series: "203E"},
	{ID: "203E-3", Name: "八寶封雞腿", Series: "203E"},
	{ID: "203E-4", Name: "果律蝦球", Series: "203E"},
	{ID: "203E-5", Name: "碧綠雙味菇", Series: "203E"},
	{ID: "203E-6", Name: "芥菜鹹蛋湯", Series: "203E"},
	{ID: "203E-7", Name: "豆沙芋棗", Series: "203E"},
}
