// Package render turns read-only simulation output into image and CSV
// artifacts. Nothing here can influence a run: it only consumes sim.Frame
// values and time-series entries.
//
//   - Scatter plots one frame with gonum/plot: agents as dots (blue S, red I,
//     green R) over the unit square, titled "Day: N", with legend entries
//     "Susceptible: <count>", "Infectious: <count>" and "Recovered: <count>".
//   - Trend plots the S, I and R series against a "Days" axis.
//   - FrameWriter is a sim.Observer that saves a scatter PNG for selected
//     stages; Animation rasterizes frames into an animated GIF.
//   - WriteTrendCSV writes day,susceptible,infectious,recovered rows.
//   - CreateUnique picks the first free "<prefix><k><ext>" name, k ≥ 1, and
//     creates it exclusively so earlier artifacts are never overwritten.
package render
