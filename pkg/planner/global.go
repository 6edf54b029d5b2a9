package planner

// GlobalEngine is the engine instance shared by the web API and the
// dataaggregator sources.
var GlobalEngine *Engine

func GlobalSetup() {
	GlobalEngine = NewEngine()
}
