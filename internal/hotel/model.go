package hotel

type Hotel struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	Address          string `json:"address"`
	Stars            int    `json:"stars"`
	PostalCode       string `json:"postal_code"`
	Municipality     string `json:"municipality"`
	MunicipalityCode string `json:"municipality_code"`
	Territory        string `json:"territory"`
	TerritoryCode    string `json:"territory_code"`
	Price            int    `json:"price"`
	Rooms            int    `json:"rooms"`
}
