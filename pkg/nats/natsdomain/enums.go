package natsdomain

type ActionType string

const (
	// sale pipeline -> api
	MsgActionSettlement ActionType = "settlement"
)

// subjects for nats

const StreamSales = "sales"

// .js. - jetstream
var SubjectsJetStream = [...]string{"sales.js.settled"}

type SubjJsType uint8

// nats jetstream subjects
const (
	SubjJsSaleSettled SubjJsType = iota
)

func (s SubjJsType) String() string {
	return SubjectsJetStream[s]
}
