package memory

import (
	"github.com/riskibarqy/fut-draft/internal/domain/formation"
	"github.com/riskibarqy/fut-draft/internal/domain/manager"
	"github.com/riskibarqy/fut-draft/internal/domain/player"
)

const (
	FormationID433   = "4-3-3"
	FormationID442   = "4-4-2"
	FormationID4231  = "4-2-3-1"
	FormationID352   = "3-5-2"
	FormationID532   = "5-3-2"
	FormationID41212 = "4-1-2-1-2"
	FormationID343   = "3-4-3"
	FormationID451   = "4-5-1"

	playerCardImage  = "/imgs/cards/gold-card.png"
	managerCardImage = "/imgs/cards/manager-card.png"
)

func SeedFormations() []formation.Formation {
	return []formation.Formation{
		{
			ID:          FormationID433,
			Name:        "4-3-3",
			Description: "Balanced shape with a holding midfielder and two wide forwards.",
			ImageURL:    "/imgs/formations/4-3-3.png",
			Slots:       []string{"GK", "LB", "CB1", "CB2", "RB", "CDM", "CM1", "CM2", "LW", "RW", "ST"},
		},
		{
			ID:          FormationID442,
			Name:        "4-4-2",
			Description: "Two banks of four with a strike partnership.",
			ImageURL:    "/imgs/formations/4-4-2.png",
			Slots:       []string{"GK", "LB", "CB1", "CB2", "RB", "LM", "CM1", "CM2", "RM", "ST1", "ST2"},
		},
		{
			ID:          FormationID4231,
			Name:        "4-2-3-1",
			Description: "Double pivot behind three attacking midfielders.",
			ImageURL:    "/imgs/formations/4-2-3-1.png",
			Slots:       []string{"GK", "LB", "CB1", "CB2", "RB", "CDM1", "CDM2", "CAM1", "CAM2", "CAM3", "ST"},
		},
		{
			ID:          FormationID352,
			Name:        "3-5-2",
			Description: "Three centre backs with wing backs providing width.",
			ImageURL:    "/imgs/formations/3-5-2.png",
			Slots:       []string{"GK", "CB1", "CB2", "CB3", "LWB", "CDM", "CM1", "CM2", "RWB", "ST1", "ST2"},
		},
		{
			ID:          FormationID532,
			Name:        "5-3-2",
			Description: "Five at the back and a compact midfield three.",
			ImageURL:    "/imgs/formations/5-3-2.png",
			Slots:       []string{"GK", "LWB", "CB1", "CB2", "CB3", "RWB", "CM1", "CM2", "CM3", "ST1", "ST2"},
		},
		{
			ID:          FormationID41212,
			Name:        "4-1-2-1-2",
			Description: "Narrow diamond with a playmaker behind two strikers.",
			ImageURL:    "/imgs/formations/4-1-2-1-2.png",
			Slots:       []string{"GK", "LB", "CB1", "CB2", "RB", "CDM", "CM1", "CM2", "CAM", "ST1", "ST2"},
		},
		{
			ID:          FormationID343,
			Name:        "3-4-3",
			Description: "Attacking back three with a front three.",
			ImageURL:    "/imgs/formations/3-4-3.png",
			Slots:       []string{"GK", "CB1", "CB2", "CB3", "LM", "CM1", "CM2", "RM", "LW", "RW", "ST"},
		},
		{
			ID:          FormationID451,
			Name:        "4-5-1",
			Description: "Crowded midfield supporting a lone striker.",
			ImageURL:    "/imgs/formations/4-5-1.png",
			Slots:       []string{"GK", "LB", "CB1", "CB2", "RB", "LM", "CM1", "CDM", "CM2", "RM", "ST"},
		},
	}
}

func SeedManagers() []manager.Manager {
	return []manager.Manager{
		newManager(1, "Pep Guardiola", "Spain"),
		newManager(2, "Jürgen Klopp", "Germany"),
		newManager(3, "Carlo Ancelotti", "Italy"),
		newManager(4, "Zinedine Zidane", "France"),
		newManager(5, "Diego Simeone", "Argentina"),
		newManager(6, "Xabi Alonso", "Spain"),
		newManager(7, "José Mourinho", "Portugal"),
		newManager(8, "Luis Enrique", "Spain"),
	}
}

func newManager(id int, name, nationality string) manager.Manager {
	return manager.Manager{
		ID:           id,
		Name:         name,
		Nationality:  nationality,
		ImageURL:     "/imgs/managers/" + slug(name) + ".png",
		CardImageURL: managerCardImage,
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		newPlayer(1, "Courtois", "Thibaut Courtois", "GK", nil, 90, "Belgium", "Real Madrid", "LaLiga"),
		newPlayer(2, "Alisson", "Alisson Becker", "GK", nil, 89, "Brazil", "Liverpool", "Premier League"),
		newPlayer(3, "Ter Stegen", "Marc-André ter Stegen", "GK", nil, 88, "Germany", "FC Barcelona", "LaLiga"),
		newPlayer(4, "Ederson", "Ederson Moraes", "GK", nil, 88, "Brazil", "Manchester City", "Premier League"),
		newPlayer(5, "Oblak", "Jan Oblak", "GK", nil, 88, "Slovenia", "Atlético de Madrid", "LaLiga"),
		newPlayer(6, "Maignan", "Mike Maignan", "GK", nil, 87, "France", "AC Milan", "Serie A"),

		newPlayer(10, "Van Dijk", "Virgil van Dijk", "CB", nil, 89, "Netherlands", "Liverpool", "Premier League"),
		newPlayer(11, "Rúben Dias", "Rúben Dias", "CB", nil, 88, "Portugal", "Manchester City", "Premier League"),
		newPlayer(12, "Rüdiger", "Antonio Rüdiger", "CB", nil, 87, "Germany", "Real Madrid", "LaLiga"),
		newPlayer(13, "Saliba", "William Saliba", "CB", nil, 87, "France", "Arsenal", "Premier League"),
		newPlayer(14, "Marquinhos", "Marcos Aoás Corrêa", "CB", []string{"CDM"}, 86, "Brazil", "Paris Saint-Germain", "Ligue 1"),
		newPlayer(15, "Bastoni", "Alessandro Bastoni", "CB", []string{"LWB"}, 86, "Italy", "Inter", "Serie A"),
		newPlayer(16, "Araujo", "Ronald Araujo", "CB", []string{"RB"}, 85, "Uruguay", "FC Barcelona", "LaLiga"),
		newPlayer(17, "Gvardiol", "Joško Gvardiol", "CB", []string{"LB"}, 85, "Croatia", "Manchester City", "Premier League"),
		newPlayer(18, "Kim Min Jae", "Kim Min-jae", "CB", nil, 84, "Korea Republic", "FC Bayern München", "Bundesliga"),

		newPlayer(20, "Theo Hernández", "Theo Hernández", "LB", []string{"LWB", "LM"}, 86, "France", "AC Milan", "Serie A"),
		newPlayer(21, "Robertson", "Andrew Robertson", "LB", []string{"LWB"}, 85, "Scotland", "Liverpool", "Premier League"),
		newPlayer(22, "Davies", "Alphonso Davies", "LB", []string{"LM", "LW"}, 84, "Canada", "FC Bayern München", "Bundesliga"),
		newPlayer(23, "Grimaldo", "Alejandro Grimaldo", "LB", []string{"LWB", "LM"}, 85, "Spain", "Bayer 04 Leverkusen", "Bundesliga"),
		newPlayer(24, "Alexander-Arnold", "Trent Alexander-Arnold", "RB", []string{"CM", "RWB"}, 87, "England", "Real Madrid", "LaLiga"),
		newPlayer(25, "Hakimi", "Achraf Hakimi", "RB", []string{"RWB", "RM"}, 86, "Morocco", "Paris Saint-Germain", "Ligue 1"),
		newPlayer(26, "Carvajal", "Daniel Carvajal", "RB", nil, 85, "Spain", "Real Madrid", "LaLiga"),
		newPlayer(27, "Kimmich", "Joshua Kimmich", "RB", []string{"CDM", "CM"}, 87, "Germany", "FC Bayern München", "Bundesliga"),
		newPlayer(28, "Frimpong", "Jeremie Frimpong", "RWB", []string{"RB", "RM"}, 84, "Netherlands", "Liverpool", "Premier League"),
		newPlayer(29, "Dumfries", "Denzel Dumfries", "RWB", []string{"RB"}, 83, "Netherlands", "Inter", "Serie A"),
		newPlayer(30, "Dimarco", "Federico Dimarco", "LWB", []string{"LB"}, 84, "Italy", "Inter", "Serie A"),

		newPlayer(40, "Rodri", "Rodrigo Hernández", "CDM", []string{"CM"}, 91, "Spain", "Manchester City", "Premier League"),
		newPlayer(41, "Rice", "Declan Rice", "CDM", []string{"CM", "CB"}, 87, "England", "Arsenal", "Premier League"),
		newPlayer(42, "Tchouaméni", "Aurélien Tchouaméni", "CDM", []string{"CB"}, 85, "France", "Real Madrid", "LaLiga"),
		newPlayer(43, "Xhaka", "Granit Xhaka", "CDM", []string{"CM"}, 84, "Switzerland", "Bayer 04 Leverkusen", "Bundesliga"),
		newPlayer(44, "De Bruyne", "Kevin De Bruyne", "CM", []string{"CAM"}, 90, "Belgium", "Manchester City", "Premier League"),
		newPlayer(45, "Bellingham", "Jude Bellingham", "CAM", []string{"CM"}, 90, "England", "Real Madrid", "LaLiga"),
		newPlayer(46, "Valverde", "Federico Valverde", "CM", []string{"RM", "CDM"}, 88, "Uruguay", "Real Madrid", "LaLiga"),
		newPlayer(47, "Pedri", "Pedro González López", "CM", []string{"CAM"}, 87, "Spain", "FC Barcelona", "LaLiga"),
		newPlayer(48, "Barella", "Nicolò Barella", "CM", nil, 86, "Italy", "Inter", "Serie A"),
		newPlayer(49, "Ødegaard", "Martin Ødegaard", "CAM", []string{"CM"}, 88, "Norway", "Arsenal", "Premier League"),
		newPlayer(50, "Bruno Fernandes", "Bruno Fernandes", "CAM", []string{"CM"}, 87, "Portugal", "Manchester United", "Premier League"),
		newPlayer(51, "Musiala", "Jamal Musiala", "CAM", []string{"LW", "CM"}, 87, "Germany", "FC Bayern München", "Bundesliga"),
		newPlayer(52, "Wirtz", "Florian Wirtz", "CAM", []string{"LW"}, 88, "Germany", "Liverpool", "Premier League"),
		newPlayer(53, "Gündoğan", "İlkay Gündoğan", "CM", []string{"CAM"}, 85, "Germany", "Manchester City", "Premier League"),
		newPlayer(54, "Mac Allister", "Alexis Mac Allister", "CM", []string{"CDM"}, 86, "Argentina", "Liverpool", "Premier League"),
		newPlayer(55, "Saka", "Bukayo Saka", "RW", []string{"RM"}, 88, "England", "Arsenal", "Premier League"),

		newPlayer(60, "Vinícius Jr.", "Vinícius José de Oliveira Júnior", "LW", []string{"ST", "LM"}, 90, "Brazil", "Real Madrid", "LaLiga"),
		newPlayer(61, "Salah", "Mohamed Salah", "RW", []string{"RM", "ST"}, 89, "Egypt", "Liverpool", "Premier League"),
		newPlayer(62, "Yamal", "Lamine Yamal", "RW", []string{"RM"}, 89, "Spain", "FC Barcelona", "LaLiga"),
		newPlayer(63, "Son", "Son Heung-min", "LW", []string{"ST", "LM"}, 86, "Korea Republic", "Los Angeles FC", "MLS"),
		newPlayer(64, "Rafael Leão", "Rafael Leão", "LW", []string{"LM"}, 86, "Portugal", "AC Milan", "Serie A"),
		newPlayer(65, "Kvaratskhelia", "Khvicha Kvaratskhelia", "LW", []string{"LM"}, 86, "Georgia", "Paris Saint-Germain", "Ligue 1"),
		newPlayer(66, "Dembélé", "Ousmane Dembélé", "RW", []string{"ST", "RM"}, 89, "France", "Paris Saint-Germain", "Ligue 1"),
		newPlayer(67, "Raphinha", "Raphael Dias Belloli", "RW", []string{"LW", "RM"}, 88, "Brazil", "FC Barcelona", "LaLiga"),
		newPlayer(68, "Foden", "Phil Foden", "RM", []string{"CAM", "RW"}, 87, "England", "Manchester City", "Premier League"),
		newPlayer(69, "Doku", "Jérémy Doku", "LM", []string{"LW"}, 82, "Belgium", "Manchester City", "Premier League"),

		newPlayer(80, "Mbappé", "Kylian Mbappé", "ST", []string{"LW"}, 91, "France", "Real Madrid", "LaLiga"),
		newPlayer(81, "Haaland", "Erling Haaland", "ST", nil, 91, "Norway", "Manchester City", "Premier League"),
		newPlayer(82, "Kane", "Harry Kane", "ST", []string{"CF"}, 90, "England", "FC Bayern München", "Bundesliga"),
		newPlayer(83, "Lautaro Martínez", "Lautaro Martínez", "ST", nil, 89, "Argentina", "Inter", "Serie A"),
		newPlayer(84, "Lewandowski", "Robert Lewandowski", "ST", nil, 88, "Poland", "FC Barcelona", "LaLiga"),
		newPlayer(85, "Osimhen", "Victor Osimhen", "ST", nil, 87, "Nigeria", "Galatasaray", "Süper Lig"),
		newPlayer(86, "Griezmann", "Antoine Griezmann", "CF", []string{"ST", "CAM"}, 87, "France", "Atlético de Madrid", "LaLiga"),
		newPlayer(87, "Isak", "Alexander Isak", "ST", nil, 87, "Sweden", "Liverpool", "Premier League"),
		newPlayer(88, "Gyökeres", "Viktor Gyökeres", "ST", nil, 86, "Sweden", "Arsenal", "Premier League"),
		newPlayer(89, "Álvarez", "Julián Álvarez", "ST", []string{"CF", "RW"}, 86, "Argentina", "Atlético de Madrid", "LaLiga"),
	}
}

func newPlayer(id int, name, realName, position string, alternatives []string, rating int, nationality, club, league string) player.Player {
	return player.Player{
		ID:                   id,
		Name:                 name,
		RealName:             realName,
		Position:             position,
		AlternativePositions: alternatives,
		Rating:               rating,
		Nationality:          nationality,
		Club:                 club,
		League:               league,
		ImageURL:             "/imgs/players/" + slug(realName) + ".png",
		CardImageURL:         playerCardImage,
	}
}
