package stations

// yamanoteOrder lists the 30 Yamanote line stations in outer-loop track
// order using ODPT station ids. Osaki is the conventional origin
// (ordinal 0); Shinagawa closes the loop at ordinal 29.
var yamanoteOrder = []string{
	"JR-East.Yamanote.Osaki",
	"JR-East.Yamanote.Gotanda",
	"JR-East.Yamanote.Meguro",
	"JR-East.Yamanote.Ebisu",
	"JR-East.Yamanote.Shibuya",
	"JR-East.Yamanote.Harajuku",
	"JR-East.Yamanote.Yoyogi",
	"JR-East.Yamanote.Shinjuku",
	"JR-East.Yamanote.ShinOkubo",
	"JR-East.Yamanote.Takadanobaba",
	"JR-East.Yamanote.Mejiro",
	"JR-East.Yamanote.Ikebukuro",
	"JR-East.Yamanote.Otsuka",
	"JR-East.Yamanote.Sugamo",
	"JR-East.Yamanote.Komagome",
	"JR-East.Yamanote.Tabata",
	"JR-East.Yamanote.NishiNippori",
	"JR-East.Yamanote.Nippori",
	"JR-East.Yamanote.Uguisudani",
	"JR-East.Yamanote.Ueno",
	"JR-East.Yamanote.Okachimachi",
	"JR-East.Yamanote.Akihabara",
	"JR-East.Yamanote.Kanda",
	"JR-East.Yamanote.Tokyo",
	"JR-East.Yamanote.Yurakucho",
	"JR-East.Yamanote.Shimbashi",
	"JR-East.Yamanote.Hamamatsucho",
	"JR-East.Yamanote.Tamachi",
	"JR-East.Yamanote.TakanawaGateway",
	"JR-East.Yamanote.Shinagawa",
}

// Yamanote returns the topology of the Yamanote line.
func Yamanote() *Topology {
	return NewTopology(yamanoteOrder)
}
