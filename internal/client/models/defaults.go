package models

// DefaultTitle is used until an event title is saved locally.
const DefaultTitle = "Isola 70"

// DefaultGuests is the seed list used when no usable snapshot is stored.
func DefaultGuests() []Guest {
	return []Guest{
		{ID: "guest-001", Name: "Ana Souza", InviteName: "Família Souza", Group: GroupFamily, Accommodation: AccommodationSandi, Status: StatusConfirmed},
		{ID: "guest-002", Name: "Carlos Souza", InviteName: "Família Souza", Group: GroupFamily, Accommodation: AccommodationSandi, Status: StatusConfirmed},
		{ID: "guest-003", Name: "Beatriz Lima", InviteName: "Beatriz e Rafael", Group: GroupFriends, Accommodation: AccommodationAconchego, Status: StatusConfirmed},
		{ID: "guest-004", Name: "Rafael Costa", InviteName: "Beatriz e Rafael", Group: GroupFriends, Accommodation: AccommodationAconchego, Status: StatusPending},
		{ID: "guest-005", Name: "Helena Martins", InviteName: "Tia Helena", Group: GroupFamily, Accommodation: AccommodationBomJardim, Status: StatusConfirmed},
		{ID: "guest-006", Name: "João Pedro Alves", InviteName: "João Pedro", Group: GroupFriends, Accommodation: AccommodationBartholomeu, Status: StatusPending},
		{ID: "guest-007", Name: "Marina Rocha", InviteName: "Marina e família", Group: GroupFriends, Accommodation: AccommodationBarcoProprio, Status: StatusConfirmed},
		{ID: "guest-008", Name: "Paulo Rocha", InviteName: "Marina e família", Group: GroupFriends, Accommodation: AccommodationBarcoProprio, Status: StatusConfirmed},
		{ID: "guest-009", Name: "Lúcia Ferreira", InviteName: "Vó Lúcia", Group: GroupFamily, Accommodation: AccommodationPousadaLitera, Status: StatusConfirmed},
		{ID: "guest-010", Name: "Tomás Ribeiro", InviteName: "Tomás", Group: GroupFriends, Status: StatusWillNotAttend},
		{ID: "guest-011", Name: "Sofia Ribeiro", InviteName: "Sofia", Group: GroupFamily, Status: StatusPending},
		{ID: "guest-012", Name: "Gabriel Nunes", InviteName: "Gabriel \"Gabi\" Nunes", Group: GroupFriends, Accommodation: AccommodationPousadaLitera, Status: StatusConfirmed},
	}
}
