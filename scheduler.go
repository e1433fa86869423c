package firmata

// Scheduler commands and replies (spec §4.5 / scheduler.md).
const (
	SchedulerCreate      byte = 0
	SchedulerDelete      byte = 1
	SchedulerAddTo       byte = 2
	SchedulerDelay       byte = 3
	SchedulerSchedule    byte = 4
	SchedulerQueryAll    byte = 5
	SchedulerQueryOne    byte = 6
	SchedulerReset       byte = 7
	schedulerError       byte = 8
	schedulerQueryAllReply byte = 9
	schedulerQueryOneReply byte = 10
)

// EncodeSchedulerCreate allocates a task with the given length in bytes.
func EncodeSchedulerCreate(s *Session, taskID byte, lengthBytes int) []byte {
	pair := encode14(lengthBytes)
	return EncodeSysexCommand(s, "SCHEDULER_DATA", SchedulerCreate, taskID, pair[0], pair[1])
}

// EncodeSchedulerDelete removes a task.
func EncodeSchedulerDelete(s *Session, taskID byte) []byte {
	return EncodeSysexCommand(s, "SCHEDULER_DATA", SchedulerDelete, taskID)
}

// EncodeSchedulerAddTo appends Firmata message bytes to a task's stored
// body.
func EncodeSchedulerAddTo(s *Session, taskID byte, messageData []byte) []byte {
	payload := append([]byte{SchedulerAddTo, taskID}, pack7(messageData)...)
	return EncodeSysexCommand(s, "SCHEDULER_DATA", payload...)
}

// EncodeSchedulerDelay tells the device to wait delayMS before running the
// next scheduled task.
func EncodeSchedulerDelay(s *Session, delayMS uint32) []byte {
	return EncodeSysexCommand(s, "SCHEDULER_DATA", SchedulerDelay,
		byte(delayMS&0x7F), byte((delayMS>>7)&0x7F),
		byte((delayMS>>14)&0x7F), byte((delayMS>>21)&0x7F))
}

// EncodeSchedulerSchedule arms a task to run after delayMS.
func EncodeSchedulerSchedule(s *Session, taskID byte, delayMS uint32) []byte {
	return EncodeSysexCommand(s, "SCHEDULER_DATA", SchedulerSchedule, taskID,
		byte(delayMS&0x7F), byte((delayMS>>7)&0x7F),
		byte((delayMS>>14)&0x7F), byte((delayMS>>21)&0x7F))
}

// EncodeSchedulerQueryAll asks for the id list of every stored task.
func EncodeSchedulerQueryAll(s *Session) []byte {
	return EncodeSysexCommand(s, "SCHEDULER_DATA", SchedulerQueryAll)
}

// EncodeSchedulerQueryOne asks for a single task's stored body.
func EncodeSchedulerQueryOne(s *Session, taskID byte) []byte {
	return EncodeSysexCommand(s, "SCHEDULER_DATA", SchedulerQueryOne, taskID)
}

// EncodeSchedulerReset clears every stored task.
func EncodeSchedulerReset(s *Session) []byte {
	return EncodeSysexCommand(s, "SCHEDULER_DATA", SchedulerReset)
}

// SchedulerTask is a decoded QUERY_ONE_REPLY. Zero-value TimeMS/Position
// means the short form was received (task exists but carries no body).
type SchedulerTask struct {
	ID       byte
	TimeMS   uint32
	Len      int
	Position int
	Messages []byte
}

// SchedulerQueryAllReply is a decoded QUERY_ALL_REPLY: the ids of every
// stored task.
type SchedulerQueryAllReply struct {
	IDs []byte
}

// SchedulerErrorReply is a decoded scheduler ERROR reply.
type SchedulerErrorReply struct {
	TaskID byte
}

// DecodeSchedulerReply dispatches a SCHEDULER_DATA sub-command payload
// (the bytes after the SCHEDULER_DATA opcode).
func DecodeSchedulerReply(body []byte) any {
	if len(body) == 0 {
		return UnknownSysex{Data: body}
	}
	sub := body[0]
	rest := body[1:]
	switch sub {
	case schedulerError:
		if len(rest) == 0 {
			return SchedulerErrorReply{}
		}
		return SchedulerErrorReply{TaskID: rest[0]}
	case schedulerQueryAllReply:
		return SchedulerQueryAllReply{IDs: append([]byte(nil), rest...)}
	case schedulerQueryOneReply:
		return parseSchedulerTask(rest)
	default:
		return UnknownSysex{Opcode: sub, Data: body}
	}
}

// parseSchedulerTask handles both the long form (id + packed
// time/len/position/messages body) and the short form (bare id, task
// exists but has no stored body).
func parseSchedulerTask(rest []byte) SchedulerTask {
	if len(rest) == 0 {
		return SchedulerTask{}
	}
	if len(rest) == 1 {
		return SchedulerTask{ID: rest[0]}
	}
	t := SchedulerTask{ID: rest[0]}
	raw := unpack7(rest[1:])
	if len(raw) < 8 {
		return t
	}
	t.TimeMS = uint32(raw[0]) | uint32(raw[1])<<8 | uint32(raw[2])<<16 | uint32(raw[3])<<24
	t.Len = int(raw[4]) | int(raw[5])<<8
	t.Position = int(raw[6]) | int(raw[7])<<8
	t.Messages = raw[8:]
	return t
}
