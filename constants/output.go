package constants

// Unknown is the explicit marker written for any field that could not be
// extracted. Downstream consumers always see five populated columns.
const Unknown = "N/A"

// CSVHeader is the header row of the output table, in column order.
var CSVHeader = []string{"date", "time_slots", "session_name", "speaker_organizer", "location_venue"}
