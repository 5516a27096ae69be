package sim

// ProcessSpec is one input record: the immutable description of a job.
type ProcessSpec struct {
	Name       string
	Burst      int64 // total CPU ticks required (> 0)
	Arrival    int64 // tick at which the job becomes eligible (>= 0)
	IOInterval int64 // executed ticks between I/O events; 0 = never
}

// SimConfig groups the parameters of one simulation run.
// It is passed by value; the simulator keeps no package-level configuration.
type SimConfig struct {
	Policy  string // one of ValidPolicyNames()
	Horizon int64  // stop once the clock reaches this tick; 0 = run until every process terminates
}

// NewSimConfig creates a SimConfig with all fields explicitly specified.
func NewSimConfig(policy string, horizon int64) SimConfig {
	return SimConfig{Policy: policy, Horizon: horizon}
}
