package config

// User facing text. The bot speaks Thai.

// Registration
const (
	RegisterTitle       = "ระบบลงทะเบียน"
	RegisterDescription = "คลิกปุ่มด้านล่างเพื่อใส่ชื่อของคุณ"
	RegisterButtonLabel = "ลงทะเบียน"
	ModalTitle          = "กรุณาใส่ชื่อของคุณ"
	NameLabel           = "ชื่อ"
	NamePlaceholder     = "ใส่ชื่อที่นี่..."

	RoleStatusNotConfigured = "ไม่ได้ตั้งค่าระบบยศ"
	RoleStatusNotFound      = "ไม่พบยศที่ตั้งค่าไว้"
	RoleStatusFailed        = "เพิ่มยศไม่สำเร็จ (ขาดสิทธิ์)"
	RoleStatusGranted       = "เพิ่มยศ %s สำเร็จ"

	LogTitle        = "บันทึกข้อมูลและปรับปรุงสถานะ"
	LogFieldName    = "ชื่อที่กรอก"
	LogFieldUser    = "ผู้ใช้"
	LogFieldRole    = "สถานะยศ"
	RegisterDone    = "ลงทะเบียนสำเร็จ! (ชื่อ: %s, %s)"
	RegisterBadName = "ชื่อต้องมีความยาว 1-100 ตัวอักษร"
)

// Role giver
const (
	RoleGiverTitle       = "เลือกยศที่ต้องการ"
	RoleGiverDescription = "คลิกเลือก Emoji ด้านล่างเพื่อรับยศที่คุณต้องการ"
)

// Command replies
const (
	ReplySetup          = "ส่งปุ่มไปที่ %s เรียบร้อยแล้ว"
	ReplySetLogs        = "ตั้งค่า Log Channel เป็น %s เรียบร้อยแล้ว"
	ReplySetVerifyRole  = "ตั้งค่ายศเป็น %s เรียบร้อยแล้ว"
	ReplySetupRoleGiver = "สร้างระบบให้ยศใน %s เรียบร้อยแล้ว (ID: %s)"
	ReplyAdd            = "เพิ่ม Emoji %s สำหรับยศ %s เรียบร้อยแล้ว"
	ReplyRemove         = "ลบ Emoji %s ออกจากระบบเรียบร้อยแล้ว"
	ReplyNoRoleGiver    = "กรุณาใช้คำสั่ง /setup_rolegiver ก่อน"
	ReplyNoChannel      = "ไม่พบห้องที่ตั้งค่าไว้"
	ReplyNoMessage      = "ไม่พบข้อความเลือกยศ (อาจถูกลบไปแล้ว)"
	ReplyBadEmoji       = "ไม่สามารถเพิ่ม Emoji นี้ได้ (บอทอาจไม่มีสิทธิ์หรือ Emoji ไม่ถูกต้อง)"
	ReplyEmojiNotMapped = "ไม่มีการตั้งค่า Emoji นี้ไว้ในระบบ"
	ReplySaveFailed     = "บันทึกการตั้งค่าไม่สำเร็จ"
	ReplySendFailed     = "ส่งข้อความไปที่ %s ไม่สำเร็จ"
	ReplyNoPermission   = "คุณไม่มีสิทธิ์ใช้คำสั่งนี้"
	ReplyUnknownCommand = "ไม่รู้จักคำสั่งนี้"
	ReplyBadArguments   = "ข้อมูลที่ส่งมาไม่ถูกต้อง"
)
