package records

type Server struct {
	Name    string `tablefy:"header(name = \"Server Name\")"`
	Port    int
	Comment *string `tablefy:"header(name = \"Note\")"`
}

type Broken struct {
	Name string `tablefy:"header(nam = \"X\")"`
}

type Ports []int
