package exports

import "github.com/export9/export9-server/internal/model"

// Country catalog keyed by OEC country id
var countries = []model.Card{
	{CountryCode: "aschn", CountryName: "China"},
	{CountryCode: "nausa", CountryName: "United States"},
	{CountryCode: "eudeu", CountryName: "Germany"},
	{CountryCode: "asjpn", CountryName: "Japan"},
	{CountryCode: "eugbr", CountryName: "United Kingdom"},
	{CountryCode: "eufra", CountryName: "France"},
	{CountryCode: "askor", CountryName: "South Korea"},
	{CountryCode: "euita", CountryName: "Italy"},
	{CountryCode: "nacan", CountryName: "Canada"},
	{CountryCode: "euesp", CountryName: "Spain"},
	{CountryCode: "asind", CountryName: "India"},
	{CountryCode: "eunld", CountryName: "Netherlands"},
	{CountryCode: "assau", CountryName: "Saudi Arabia"},
	{CountryCode: "euche", CountryName: "Switzerland"},
	{CountryCode: "ocaus", CountryName: "Australia"},
	{CountryCode: "euirl", CountryName: "Ireland"},
	{CountryCode: "namex", CountryName: "Mexico"},
	{CountryCode: "eurus", CountryName: "Russia"},
	{CountryCode: "astha", CountryName: "Thailand"},
	{CountryCode: "asmys", CountryName: "Malaysia"},
	{CountryCode: "sabra", CountryName: "Brazil"},
}

// Product catalog keyed by OEC HS4 product id
var products = []model.Product{
	{ID: "52709", Name: "Crude Petroleum", Category: "energy"},
	{ID: "178703", Name: "Cars", Category: "automotive"},
	{ID: "52710", Name: "Refined Petroleum", Category: "energy"},
	{ID: "168542", Name: "Integrated Circuits", Category: "electronics"},
	{ID: "168517", Name: "Telephones", Category: "electronics"},
	{ID: "52711", Name: "Petroleum Gas", Category: "energy"},
	{ID: "63004", Name: "Packaged Medicaments", Category: "healthcare"},
	{ID: "178708", Name: "Motor Vehicle Parts", Category: "automotive"},
	{ID: "168471", Name: "Computers", Category: "electronics"},
	{ID: "74011", Name: "Rubber Tires", Category: "automotive"},
	{ID: "21201", Name: "Soybeans", Category: "agriculture"},
	{ID: "42204", Name: "Wine", Category: "beverages"},
	{ID: "10406", Name: "Cheese", Category: "food"},
	{ID: "20901", Name: "Coffee", Category: "beverages"},
	{ID: "41701", Name: "Raw Sugar", Category: "food"},
	{ID: "42208", Name: "Hard Liquor", Category: "beverages"},
	{ID: "42203", Name: "Beer", Category: "beverages"},
	{ID: "178806", Name: "Drones", Category: "electronics"},
}

// Known dominant exporters, used to bias generated snapshot values
// toward real-world trade patterns
var fallbackBoosts = map[string]map[string]float64{
	"52709":  {"assau": 3.0, "eurus": 2.8, "sabra": 1.8, "nausa": 1.8},
	"178703": {"eudeu": 3.5, "asjpn": 3.0, "askor": 2.2},
	"168542": {"aschn": 3.0, "askor": 2.8, "asjpn": 2.2},
	"168517": {"aschn": 4.0, "askor": 2.5},
	"63004":  {"eudeu": 2.5, "euche": 2.4, "nausa": 1.8},
	"42204":  {"eufra": 3.0, "euita": 2.5, "euesp": 2.0},
	"20901":  {"sabra": 3.0, "eufra": 1.5, "euita": 1.5},
	"21201":  {"sabra": 3.2, "nausa": 2.5, "asind": 1.4},
}
