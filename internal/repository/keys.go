package repository

// Key naming conventions for every entity and index. Domain services never
// touch keys directly; all index mutations go through the repositories in
// this package so that every write is paired with its inverse on delete.

const (
	userKeyPrefix         = "user:"
	emailIndexPrefix      = "user:email:"
	motherKeyPrefix       = "mother:"
	clinicKeyPrefix       = "clinic:"
	pendingClinicsKey     = "system:pending-clinics"
	appointmentKeyPrefix  = "appointment:"
	motherApptsPrefix     = "appointments:mother:"
	clinicApptsPrefix     = "appointments:clinic:"
	educationKeyPrefix    = "education:"
	categoryIndexPrefix   = "education:category:"
	messageKeyPrefix      = "message:"
	conversationPrefix    = "messages:conversation:"
	notificationKeyPrefix = "notification:"
	userNotifsPrefix      = "notifications:user:"
	measurementsPrefix    = "pregnancy:measurements:"
)

func userKey(id string) string              { return userKeyPrefix + id }
func emailIndexKey(email string) string     { return emailIndexPrefix + email }
func motherKey(id string) string            { return motherKeyPrefix + id }
func clinicKey(id string) string            { return clinicKeyPrefix + id }
func appointmentKey(id string) string       { return appointmentKeyPrefix + id }
func motherApptsKey(motherID string) string { return motherApptsPrefix + motherID }
func clinicApptsKey(clinicID string) string { return clinicApptsPrefix + clinicID }
func educationKey(id string) string         { return educationKeyPrefix + id }
func categoryIndexKey(cat string) string    { return categoryIndexPrefix + cat }
func messageKey(id string) string           { return messageKeyPrefix + id }
func notificationKey(id string) string      { return notificationKeyPrefix + id }
func userNotifsKey(userID string) string    { return userNotifsPrefix + userID }
func measurementsKey(motherID string) string {
	return measurementsPrefix + motherID
}

func conversationKey(senderID, recipientID string) string {
	return conversationPrefix + senderID + ":" + recipientID
}
