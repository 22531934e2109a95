package sample

type Item struct {
	SKU   string `tablefy:"header(name = \"SKU\")"`
	Count int
	Note  *string
}

type Bad struct {
	Name string `tablefy:"header(name \"Name\")"`
}
