package output

// TSVHeader is the canonical header row for the report table.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "mode\tminimum\tseeds\tpieces"

// RangesHeader heads the optional final-ranges table.
const RangesHeader = "mode\tbegin\tend\tlength"

// CheckHeader heads the check table.
const CheckHeader = "check\tvalue"
