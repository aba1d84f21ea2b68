package fixtures

import (
	"fmt"
	"time"

	"github.com/noah-isme/school-admin-api/internal/models"
)

// Term is the academic term the demo scores belong to.
const Term = "2024-T1"

// AttendanceDates lists the school days covered by the demo attendance register.
var AttendanceDates = []string{"2024-09-02", "2024-09-03", "2024-09-04"}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func demoUsers() []models.User {
	return []models.User{
		{ID: "u1", Name: "Grace Hopper", Email: "admin@school.test", Role: models.RoleAdmin},
		{ID: "t1", Name: "Alan Turing", Email: "alan.turing@school.test", Role: models.RoleTeacher},
		{ID: "t2", Name: "Marie Curie", Email: "marie.curie@school.test", Role: models.RoleTeacher},
		{ID: "s1", Name: "Ada Lovelace", Email: "ada.lovelace@school.test", Role: models.RoleStudent},
	}
}

func demoTeachers() []models.Teacher {
	return []models.Teacher{
		{ID: "t1", Name: "Alan Turing", Email: "alan.turing@school.test", Phone: "+1-555-0101", SubjectIDs: []string{"sub1", "sub4"}, Status: models.TeacherStatusActive, JoinedAt: day(2018, time.August, 20)},
		{ID: "t2", Name: "Marie Curie", Email: "marie.curie@school.test", Phone: "+1-555-0102", SubjectIDs: []string{"sub2", "sub6"}, Status: models.TeacherStatusActive, JoinedAt: day(2019, time.January, 7)},
		{ID: "t3", Name: "Jane Austen", Email: "jane.austen@school.test", Phone: "+1-555-0103", SubjectIDs: []string{"sub3"}, Status: models.TeacherStatusActive, JoinedAt: day(2020, time.August, 17)},
		{ID: "t4", Name: "Herodotus Smith", Email: "herodotus.smith@school.test", Phone: "+1-555-0104", SubjectIDs: []string{"sub5"}, Status: models.TeacherStatusActive, JoinedAt: day(2016, time.August, 22)},
		{ID: "t5", Name: "Richard Feynman", Email: "richard.feynman@school.test", Phone: "+1-555-0105", SubjectIDs: []string{"sub7"}, Status: models.TeacherStatusActive, JoinedAt: day(2021, time.August, 16)},
		{ID: "t6", Name: "Toni Morrison", Email: "toni.morrison@school.test", Phone: "+1-555-0106", SubjectIDs: []string{"sub8"}, Status: models.TeacherStatusOnLeave, JoinedAt: day(2017, time.August, 21)},
	}
}

func demoClasses() []models.Class {
	return []models.Class{
		{ID: "c1", Name: "Grade 7 - A", Grade: 7, Section: "A", TeacherID: "t1", Room: "R-101", Capacity: 30},
		{ID: "c2", Name: "Grade 7 - B", Grade: 7, Section: "B", TeacherID: "t3", Room: "R-102", Capacity: 30},
		{ID: "c3", Name: "Grade 8 - A", Grade: 8, Section: "A", TeacherID: "t4", Room: "R-201", Capacity: 28},
		{ID: "c4", Name: "Grade 9 - A", Grade: 9, Section: "A", TeacherID: "t5", Room: "R-301", Capacity: 25},
	}
}

func demoSubjects() []models.Subject {
	return []models.Subject{
		{ID: "sub1", Name: "Mathematics", Code: "MATH-7A", ClassID: "c1", TeacherID: "t1"},
		{ID: "sub2", Name: "Science", Code: "SCI-7A", ClassID: "c1", TeacherID: "t2"},
		{ID: "sub3", Name: "English", Code: "ENG-7B", ClassID: "c2", TeacherID: "t3"},
		{ID: "sub4", Name: "Mathematics", Code: "MATH-7B", ClassID: "c2", TeacherID: "t1"},
		{ID: "sub5", Name: "History", Code: "HIS-8A", ClassID: "c3", TeacherID: "t4"},
		{ID: "sub6", Name: "Science", Code: "SCI-8A", ClassID: "c3", TeacherID: "t2"},
		{ID: "sub7", Name: "Physics", Code: "PHY-9A", ClassID: "c4", TeacherID: "t5"},
		{ID: "sub8", Name: "Literature", Code: "LIT-9A", ClassID: "c4", TeacherID: "t6"},
	}
}

func demoStudents() []models.Student {
	type row struct {
		name, class, gender, status, guardian string
	}
	rows := []row{
		{"Ada Lovelace", "c1", "female", models.StudentStatusActive, "Anne Byron"},
		{"Blaise Pascal", "c1", "male", models.StudentStatusActive, "Etienne Pascal"},
		{"Carl Gauss", "c1", "male", models.StudentStatusActive, "Dorothea Gauss"},
		{"Dorothy Vaughan", "c1", "female", models.StudentStatusActive, "Annie Johnson"},
		{"Emmy Noether", "c2", "female", models.StudentStatusActive, "Max Noether"},
		{"Fibonacci Leon", "c2", "male", models.StudentStatusActive, "Guglielmo Bonacci"},
		{"Grace Chisholm", "c2", "female", models.StudentStatusActive, "Henry Chisholm"},
		{"Hedy Lamarr", "c2", "female", models.StudentStatusInactive, "Gertrud Kiesler"},
		{"Isaac Newton", "c3", "male", models.StudentStatusActive, "Hannah Ayscough"},
		{"Johannes Kepler", "c3", "male", models.StudentStatusActive, "Katharina Kepler"},
		{"Katherine Johnson", "c3", "female", models.StudentStatusActive, "Joylette Coleman"},
		{"Leonhard Euler", "c3", "male", models.StudentStatusActive, "Paul Euler"},
		{"Mary Somerville", "c4", "female", models.StudentStatusActive, "William Fairfax"},
		{"Niels Bohr", "c4", "male", models.StudentStatusActive, "Christian Bohr"},
		{"Otto Hahn", "c4", "male", models.StudentStatusGraduated, "Heinrich Hahn"},
		{"Rosalind Franklin", "c4", "female", models.StudentStatusActive, "Ellis Franklin"},
	}

	students := make([]models.Student, 0, len(rows))
	for i, r := range rows {
		id := fmt.Sprintf("s%d", i+1)
		students = append(students, models.Student{
			ID:         id,
			Name:       r.name,
			Email:      emailFor(r.name),
			ClassID:    r.class,
			Gender:     r.gender,
			Status:     r.status,
			RollNumber: fmt.Sprintf("2024-%03d", i+1),
			Guardian:   r.guardian,
			EnrolledAt: day(2024, time.August, 19),
		})
	}
	return students
}

func emailFor(name string) string {
	local := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r == ' ':
			local = append(local, '.')
		case r >= 'A' && r <= 'Z':
			local = append(local, r+('a'-'A'))
		default:
			local = append(local, r)
		}
	}
	return string(local) + "@school.test"
}

func demoClassNotes() []models.ClassNote {
	return []models.ClassNote{
		{ID: "n1", ClassID: "c1", SubjectID: "sub1", TeacherID: "t1", Title: "Fractions recap", Content: "Review chapter 3 exercises before Friday.", CreatedAt: day(2024, time.September, 2)},
		{ID: "n2", ClassID: "c1", SubjectID: "sub2", TeacherID: "t2", Title: "Lab safety", Content: "Bring goggles to the next lab session.", CreatedAt: day(2024, time.September, 3)},
		{ID: "n3", ClassID: "c2", SubjectID: "sub3", TeacherID: "t3", Title: "Reading list", Content: "Start Pride and Prejudice, chapters 1-5.", CreatedAt: day(2024, time.September, 3)},
		{ID: "n4", ClassID: "c3", SubjectID: "sub5", TeacherID: "t4", Title: "Field trip", Content: "Museum visit forms due next week.", CreatedAt: day(2024, time.September, 4)},
		{ID: "n5", ClassID: "c4", SubjectID: "sub7", TeacherID: "t5", Title: "Kinematics quiz", Content: "Quiz on motion graphs on Monday.", CreatedAt: day(2024, time.September, 4)},
	}
}

func demoAssignments() []models.Assignment {
	return []models.Assignment{
		{ID: "a1", Title: "Fractions worksheet", Description: "Simplify the twenty fractions.", SubjectID: "sub1", ClassID: "c1", TeacherID: "t1", DueDate: day(2024, time.September, 10), Status: models.AssignmentStatusPublished, MaxScore: 20},
		{ID: "a2", Title: "Plant cell diagram", Description: "Label every organelle.", SubjectID: "sub2", ClassID: "c1", TeacherID: "t2", DueDate: day(2024, time.September, 12), Status: models.AssignmentStatusPublished, MaxScore: 10},
		{ID: "a3", Title: "Book report", Description: "Two pages on a novel of your choice.", SubjectID: "sub3", ClassID: "c2", TeacherID: "t3", DueDate: day(2024, time.September, 20), Status: models.AssignmentStatusDraft, MaxScore: 50},
		{ID: "a4", Title: "Algebra basics", Description: "Solve the linear equations set.", SubjectID: "sub4", ClassID: "c2", TeacherID: "t1", DueDate: day(2024, time.September, 6), Status: models.AssignmentStatusClosed, MaxScore: 25},
		{ID: "a5", Title: "Ancient empires essay", Description: "Compare Rome and Han China.", SubjectID: "sub5", ClassID: "c3", TeacherID: "t4", DueDate: day(2024, time.September, 18), Status: models.AssignmentStatusPublished, MaxScore: 40},
		{ID: "a6", Title: "Periodic table quiz", Description: "Memorise the first twenty elements.", SubjectID: "sub6", ClassID: "c3", TeacherID: "t2", DueDate: day(2024, time.September, 9), Status: models.AssignmentStatusClosed, MaxScore: 20},
		{ID: "a7", Title: "Projectile lab", Description: "Measure range against launch angle.", SubjectID: "sub7", ClassID: "c4", TeacherID: "t5", DueDate: day(2024, time.September, 25), Status: models.AssignmentStatusPublished, MaxScore: 30},
		{ID: "a8", Title: "Poetry analysis", Description: "Analyse one sonnet.", SubjectID: "sub8", ClassID: "c4", TeacherID: "t6", DueDate: day(2024, time.September, 27), Status: models.AssignmentStatusDraft, MaxScore: 20},
	}
}

func demoFees() []models.Fee {
	tuitionDue := day(2024, time.September, 15)
	// paid amounts per student for a 1200 tuition bill
	paid := []float64{1200, 1200, 600, 0, 1200, 1200, 1200, 0, 1200, 300, 1200, 1200, 1200, 0, 1200, 900}
	classes := []string{"c1", "c1", "c1", "c1", "c2", "c2", "c2", "c2", "c3", "c3", "c3", "c3", "c4", "c4", "c4", "c4"}

	fees := make([]models.Fee, 0, len(paid)+4)
	for i, amount := range paid {
		fee := models.Fee{
			ID:         fmt.Sprintf("f%d", i+1),
			StudentID:  fmt.Sprintf("s%d", i+1),
			ClassID:    classes[i],
			Category:   models.FeeCategoryTuition,
			Amount:     1200,
			PaidAmount: amount,
			DueDate:    tuitionDue,
		}
		fee.Status = feeStatus(fee)
		fees = append(fees, fee)
	}

	extras := []models.Fee{
		{ID: "f17", StudentID: "s1", ClassID: "c1", Category: models.FeeCategoryTransport, Amount: 150, PaidAmount: 150, DueDate: day(2024, time.September, 30)},
		{ID: "f18", StudentID: "s6", ClassID: "c2", Category: models.FeeCategoryTransport, Amount: 150, PaidAmount: 0, DueDate: day(2024, time.September, 30)},
		{ID: "f19", StudentID: "s9", ClassID: "c3", Category: models.FeeCategoryLibrary, Amount: 40, PaidAmount: 40, DueDate: day(2024, time.October, 1)},
		{ID: "f20", StudentID: "s13", ClassID: "c4", Category: models.FeeCategoryExam, Amount: 80, PaidAmount: 0, DueDate: day(2024, time.August, 30)},
	}
	for _, fee := range extras {
		fee.Status = feeStatus(fee)
		fees = append(fees, fee)
	}
	return fees
}

// feeStatus derives the status the dashboard shows for a fee.
func feeStatus(fee models.Fee) string {
	switch {
	case fee.PaidAmount >= fee.Amount:
		return models.FeeStatusPaid
	case fee.PaidAmount > 0:
		return models.FeeStatusPartial
	case fee.DueDate.Before(day(2024, time.September, 1)):
		return models.FeeStatusOverdue
	default:
		return models.FeeStatusUnpaid
	}
}

func demoTransactions() []models.Transaction {
	return []models.Transaction{
		{ID: "tx1", Type: models.TransactionTypeIncome, Category: "tuition", Description: "Tuition collections week 1", Amount: 6000, Date: day(2024, time.August, 26), Reference: "RCPT-0001"},
		{ID: "tx2", Type: models.TransactionTypeIncome, Category: "tuition", Description: "Tuition collections week 2", Amount: 4800, Date: day(2024, time.September, 2), Reference: "RCPT-0002"},
		{ID: "tx3", Type: models.TransactionTypeIncome, Category: "transport", Description: "Bus passes", Amount: 150, Date: day(2024, time.September, 3), Reference: "RCPT-0003"},
		{ID: "tx4", Type: models.TransactionTypeIncome, Category: "library", Description: "Library memberships", Amount: 40, Date: day(2024, time.September, 5), Reference: "RCPT-0004"},
		{ID: "tx5", Type: models.TransactionTypeIncome, Category: "donation", Description: "Parent association donation", Amount: 2500, Date: day(2024, time.September, 20), Reference: "DON-0001"},
		{ID: "tx6", Type: models.TransactionTypeExpense, Category: "salaries", Description: "August payroll", Amount: 7200, Date: day(2024, time.August, 30), Reference: "PAY-0008"},
		{ID: "tx7", Type: models.TransactionTypeExpense, Category: "utilities", Description: "Electricity bill", Amount: 640, Date: day(2024, time.September, 4), Reference: "UTL-0091"},
		{ID: "tx8", Type: models.TransactionTypeExpense, Category: "supplies", Description: "Lab consumables", Amount: 380, Date: day(2024, time.September, 6), Reference: "SUP-0142"},
		{ID: "tx9", Type: models.TransactionTypeExpense, Category: "maintenance", Description: "Roof repair", Amount: 1250, Date: day(2024, time.September, 12), Reference: "MNT-0017"},
		{ID: "tx10", Type: models.TransactionTypeExpense, Category: "supplies", Description: "Library books", Amount: 420, Date: day(2024, time.September, 18), Reference: "SUP-0150"},
		{ID: "tx11", Type: models.TransactionTypeExpense, Category: "salaries", Description: "September payroll", Amount: 7200, Date: day(2024, time.September, 30), Reference: "PAY-0009"},
		{ID: "tx12", Type: models.TransactionTypeIncome, Category: "tuition", Description: "Late tuition payments", Amount: 1500, Date: day(2024, time.September, 27), Reference: "RCPT-0005"},
	}
}

func demoBooks() []models.Book {
	return []models.Book{
		{ID: "b1", Title: "A Brief History of Time", Author: "Stephen Hawking", ISBN: "978-0553380163", Category: "science", TotalCopies: 4, AvailableCopies: 2, Shelf: "S-1"},
		{ID: "b2", Title: "Pride and Prejudice", Author: "Jane Austen", ISBN: "978-0141439518", Category: "fiction", TotalCopies: 6, AvailableCopies: 5, Shelf: "F-3"},
		{ID: "b3", Title: "The Elements", Author: "Euclid", ISBN: "978-1888009194", Category: "mathematics", TotalCopies: 2, AvailableCopies: 0, Shelf: "M-1"},
		{ID: "b4", Title: "Sapiens", Author: "Yuval Noah Harari", ISBN: "978-0062316097", Category: "history", TotalCopies: 3, AvailableCopies: 3, Shelf: "H-2"},
		{ID: "b5", Title: "The Selfish Gene", Author: "Richard Dawkins", ISBN: "978-0198788607", Category: "science", TotalCopies: 2, AvailableCopies: 1, Shelf: "S-2"},
		{ID: "b6", Title: "Beloved", Author: "Toni Morrison", ISBN: "978-1400033416", Category: "fiction", TotalCopies: 3, AvailableCopies: 3, Shelf: "F-5"},
		{ID: "b7", Title: "Surely You're Joking, Mr. Feynman!", Author: "Richard Feynman", ISBN: "978-0393316049", Category: "science", TotalCopies: 1, AvailableCopies: 0, Shelf: "S-3"},
		{ID: "b8", Title: "Flatland", Author: "Edwin Abbott", ISBN: "978-0486272634", Category: "mathematics", TotalCopies: 5, AvailableCopies: 5, Shelf: "M-2"},
	}
}

func demoIssuances() []models.BookIssuance {
	returned := day(2024, time.September, 9)
	return []models.BookIssuance{
		{ID: "i1", BookID: "b1", StudentID: "s1", IssuedAt: day(2024, time.September, 2), DueAt: day(2024, time.September, 16), Status: models.IssuanceStatusIssued},
		{ID: "i2", BookID: "b1", StudentID: "s9", IssuedAt: day(2024, time.August, 20), DueAt: day(2024, time.September, 3), Status: models.IssuanceStatusOverdue},
		{ID: "i3", BookID: "b2", StudentID: "s5", IssuedAt: day(2024, time.September, 3), DueAt: day(2024, time.September, 17), Status: models.IssuanceStatusIssued},
		{ID: "i4", BookID: "b3", StudentID: "s3", IssuedAt: day(2024, time.September, 2), DueAt: day(2024, time.September, 16), Status: models.IssuanceStatusIssued},
		{ID: "i5", BookID: "b3", StudentID: "s12", IssuedAt: day(2024, time.August, 26), DueAt: day(2024, time.September, 9), Status: models.IssuanceStatusIssued},
		{ID: "i6", BookID: "b5", StudentID: "s14", IssuedAt: day(2024, time.September, 4), DueAt: day(2024, time.September, 18), Status: models.IssuanceStatusIssued},
		{ID: "i7", BookID: "b7", StudentID: "s13", IssuedAt: day(2024, time.September, 1), DueAt: day(2024, time.September, 15), Status: models.IssuanceStatusIssued},
		{ID: "i8", BookID: "b4", StudentID: "s10", IssuedAt: day(2024, time.August, 26), DueAt: day(2024, time.September, 9), ReturnedAt: &returned, Status: models.IssuanceStatusReturned},
	}
}

func demoIDCards() []models.IDCard {
	issued := day(2024, time.August, 19)
	expires := day(2025, time.July, 31)
	return []models.IDCard{
		{ID: "card1", HolderID: "s1", HolderType: models.HolderTypeStudent, CardNumber: "STU-2024-001", IssuedAt: issued, ExpiresAt: expires, Status: models.IDCardStatusActive},
		{ID: "card2", HolderID: "s2", HolderType: models.HolderTypeStudent, CardNumber: "STU-2024-002", IssuedAt: issued, ExpiresAt: expires, Status: models.IDCardStatusActive},
		{ID: "card3", HolderID: "s5", HolderType: models.HolderTypeStudent, CardNumber: "STU-2024-005", IssuedAt: issued, ExpiresAt: expires, Status: models.IDCardStatusActive},
		{ID: "card4", HolderID: "s8", HolderType: models.HolderTypeStudent, CardNumber: "STU-2024-008", IssuedAt: issued, ExpiresAt: expires, Status: models.IDCardStatusRevoked},
		{ID: "card5", HolderID: "s15", HolderType: models.HolderTypeStudent, CardNumber: "STU-2023-015", IssuedAt: day(2023, time.August, 21), ExpiresAt: day(2024, time.July, 31), Status: models.IDCardStatusExpired},
		{ID: "card6", HolderID: "t1", HolderType: models.HolderTypeTeacher, CardNumber: "TCH-2024-001", IssuedAt: issued, ExpiresAt: day(2026, time.July, 31), Status: models.IDCardStatusActive},
		{ID: "card7", HolderID: "t2", HolderType: models.HolderTypeTeacher, CardNumber: "TCH-2024-002", IssuedAt: issued, ExpiresAt: day(2026, time.July, 31), Status: models.IDCardStatusActive},
		{ID: "card8", HolderID: "t6", HolderType: models.HolderTypeTeacher, CardNumber: "TCH-2022-006", IssuedAt: day(2022, time.August, 22), ExpiresAt: day(2024, time.July, 31), Status: models.IDCardStatusExpired},
	}
}

// attendancePattern holds one status letter per student (s1..s16) per school day.
// P present, A absent, L late, E excused.
var attendancePattern = []string{
	"PPPAPPPAPPLPPPPP",
	"PLPPPPAAPPPPLPPP",
	"PPPPEPPAPPPAPPPP",
}

func demoAttendance() []models.AttendanceRecord {
	students := demoStudents()
	statuses := map[byte]string{
		'P': models.AttendancePresent,
		'A': models.AttendanceAbsent,
		'L': models.AttendanceLate,
		'E': models.AttendanceExcused,
	}

	records := make([]models.AttendanceRecord, 0, len(students)*len(AttendanceDates))
	for d, date := range AttendanceDates {
		for i, student := range students {
			status := statuses[attendancePattern[d][i]]
			note := ""
			if status == models.AttendanceExcused {
				note = "medical appointment"
			}
			records = append(records, models.AttendanceRecord{
				ID:        fmt.Sprintf("att-%s-%s", date, student.ID),
				StudentID: student.ID,
				ClassID:   student.ClassID,
				Date:      date,
				Status:    status,
				Note:      note,
			})
		}
	}
	return records
}

// scoreTable holds each student's two subject scores (out of 100), in the
// order their class's subjects are listed.
var scoreTable = [][2]float64{
	{95, 88}, {72, 80}, {91, 94}, {65, 70},
	{88, 76}, {54, 61}, {79, 85}, {45, 50},
	{97, 90}, {83, 86}, {92, 98}, {70, 68},
	{89, 93}, {76, 72}, {60, 58}, {94, 96},
}

func demoScores() []models.Score {
	subjectsByClass := map[string][]string{}
	for _, subject := range demoSubjects() {
		subjectsByClass[subject.ClassID] = append(subjectsByClass[subject.ClassID], subject.ID)
	}

	scores := make([]models.Score, 0, len(scoreTable)*2)
	for i, student := range demoStudents() {
		for j, subjectID := range subjectsByClass[student.ClassID] {
			scores = append(scores, models.Score{
				StudentID: student.ID,
				SubjectID: subjectID,
				Term:      Term,
				Score:     scoreTable[i][j],
				MaxScore:  100,
			})
		}
	}
	return scores
}

func demoNotices() []models.Notice {
	return []models.Notice{
		{ID: "notice-1", Title: "Parent-teacher meeting", Body: "<p>Meetings run <strong>Saturday 9am-1pm</strong> in the main hall.</p>", Audience: models.NoticeAudienceAll, Pinned: true, CreatedAt: day(2024, time.September, 1)},
		{ID: "notice-2", Title: "Staff briefing", Body: "<p>Weekly briefing moves to Tuesday.</p>", Audience: models.NoticeAudienceTeachers, CreatedAt: day(2024, time.September, 2)},
		{ID: "notice-3", Title: "Sports day", Body: "<p>Wear house colours on Friday.</p>", Audience: models.NoticeAudienceStudents, CreatedAt: day(2024, time.September, 3)},
	}
}
