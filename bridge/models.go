package bridge

import "github.com/victorjacobs/go-ensy/ensy"

type sensorConfiguration struct {
	name       string
	class      string
	unit       string
	get        func(state ensy.State) *int
	stateTopic string
}
